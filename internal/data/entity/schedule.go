package entity

// ScheduleEntry links one movie to one cinema together with the number
// of seats still bookable for that pairing. It has no identity of its
// own: the (cinema_id, movie_id) pair is the primary key, and the row
// disappears when either parent is deleted.
type ScheduleEntry struct {
	CinemaID int64 `db:"cinema_id"`
	MovieID  int64 `db:"movie_id"`
	Seats    int   `db:"seats"`
}

// ScheduleItem is a schedule row joined with its movie, used for
// listing a cinema's schedule.
type ScheduleItem struct {
	Movie Movie
	Seats int
}
