package entity

type Cinema struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	City    string `db:"city"`
	Address string `db:"address"`
}
