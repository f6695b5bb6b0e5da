package adaptor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rauanCheb33/oop-final-project/internal/adaptor"
	"github.com/rauanCheb33/oop-final-project/internal/data/repository"
	"github.com/rauanCheb33/oop-final-project/internal/dto/request"
	"github.com/rauanCheb33/oop-final-project/internal/dto/response"
	"github.com/rauanCheb33/oop-final-project/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService returns a canned outcome, recording what it was
// asked for.
type stubBookingService struct {
	result   *response.BookingResult
	err      error
	cinemaID int64
	req      *request.BookingRequest
}

func (s *stubBookingService) Book(ctx context.Context, cinemaID int64, req *request.BookingRequest) (*response.BookingResult, error) {
	s.cinemaID = cinemaID
	s.req = req
	return s.result, s.err
}

func newBookingRouter(stub *stubBookingService) *chi.Mux {
	handler := adaptor.NewBookingHandler(stub, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/cinemas/{id}/book", handler.Book)
	return r
}

func doBook(t *testing.T, router *chi.Mux, path, body string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return rec, envelope
}

func TestBookHandler_Success(t *testing.T) {
	seats := 2
	balance := 10.0
	stub := &stubBookingService{result: &response.BookingResult{
		Success:        true,
		Message:        "Booking success: 3 ticket(s) for Inception",
		RemainingSeats: &seats,
		ViewerBalance:  &balance,
	}}
	router := newBookingRouter(stub)

	rec, envelope := doBook(t, router, "/api/cinemas/3/book",
		`{"viewer_id": 1, "movie_id": 2, "quantity": 3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Status)
	assert.Equal(t, int64(3), stub.cinemaID)
	assert.Equal(t, int64(1), stub.req.ViewerID)
	assert.Equal(t, 3, stub.req.Quantity)
}

func TestBookHandler_BusinessFailureIsStill200(t *testing.T) {
	stub := &stubBookingService{result: response.BookingFailure("movie is not available in this cinema")}
	router := newBookingRouter(stub)

	rec, envelope := doBook(t, router, "/api/cinemas/3/book",
		`{"viewer_id": 1, "movie_id": 2, "quantity": 1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "movie is not available in this cinema", envelope.Message)

	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var result response.BookingResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.False(t, result.Success)
	assert.Nil(t, result.RemainingSeats)
}

func TestBookHandler_InvalidCinemaID(t *testing.T) {
	stub := &stubBookingService{}
	router := newBookingRouter(stub)

	rec, envelope := doBook(t, router, "/api/cinemas/abc/book",
		`{"viewer_id": 1, "movie_id": 2, "quantity": 1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Status)
	assert.Nil(t, stub.req, "service must not be called")
}

func TestBookHandler_ValidationFailure(t *testing.T) {
	stub := &stubBookingService{}
	router := newBookingRouter(stub)

	rec, _ := doBook(t, router, "/api/cinemas/3/book",
		`{"viewer_id": 1, "movie_id": 2, "quantity": 0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.req, "service must not be called")
}

func TestBookHandler_MalformedBody(t *testing.T) {
	stub := &stubBookingService{}
	router := newBookingRouter(stub)

	rec, _ := doBook(t, router, "/api/cinemas/3/book", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookHandler_NotFound(t *testing.T) {
	stub := &stubBookingService{err: &repository.NotFoundError{Entity: "Viewer", ID: int64(99)}}
	router := newBookingRouter(stub)

	rec, envelope := doBook(t, router, "/api/cinemas/3/book",
		`{"viewer_id": 99, "movie_id": 2, "quantity": 1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Viewer with id=99 not found", envelope.Message)
}

func TestBookHandler_TransientFaultIs503(t *testing.T) {
	stub := &stubBookingService{err: &pgconn.PgError{Code: pgerrcode.LockNotAvailable}}
	router := newBookingRouter(stub)

	rec, envelope := doBook(t, router, "/api/cinemas/3/book",
		`{"viewer_id": 1, "movie_id": 2, "quantity": 1}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Temporary failure, please retry", envelope.Message)
}
