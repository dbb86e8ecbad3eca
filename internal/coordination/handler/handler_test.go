package handler_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muster/internal/coordination/handler"
	"muster/internal/coordination/models"
	"muster/internal/coordination/service"
	"muster/internal/coordination/store/commitment"
	"muster/internal/coordination/store/disaster"
	"muster/pkg/testutil"
)

type fixture struct {
	router      chi.Router
	disasters   *disaster.InMemory
	commitments *commitment.InMemory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	disasters := disaster.NewInMemory()
	commitments := commitment.NewInMemory()
	svc, err := service.New(disasters, commitments)
	require.NoError(t, err)

	r := chi.NewRouter()
	handler.New(svc, slog.New(slog.DiscardHandler)).Register(r)
	return &fixture{router: r, disasters: disasters, commitments: commitments}
}

func TestCreateDisaster(t *testing.T) {
	t.Run("creates disaster and returns it with an ID", func(t *testing.T) {
		f := newFixture(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/disasters",
			handler.CreateDisasterRequest{Name: "Flood relief", Active: true})
		rr := testutil.DoRequest(f.router, req)

		testutil.AssertStatus(t, rr, http.StatusCreated)
		got := testutil.UnmarshalResponse[models.Disaster](t, rr)
		assert.NotZero(t, got.ID)
		assert.Equal(t, "Flood relief", got.Name)
		assert.True(t, got.Active)
	})

	t.Run("missing name is a bad request", func(t *testing.T) {
		f := newFixture(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/disasters",
			handler.CreateDisasterRequest{Active: true})
		rr := testutil.DoRequest(f.router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		f := newFixture(t)

		req := testutil.NewRequestWithBody(t, http.MethodPost, "/disasters", "{not json")
		rr := testutil.DoRequest(f.router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})
}

func TestListDisasters(t *testing.T) {
	t.Run("empty store returns empty array", func(t *testing.T) {
		f := newFixture(t)

		rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/disasters", nil))

		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("active filter drops inactive disasters", func(t *testing.T) {
		f := newFixture(t)
		seed := []*models.Disaster{
			{Name: "Flood relief", Active: true},
			{Name: "Closed-out earthquake", Active: false},
		}
		for _, d := range seed {
			require.NoError(t, f.disasters.Add(context.Background(), d))
		}

		rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/disasters?active=true", nil))

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[[]models.Disaster](t, rr)
		require.Len(t, *got, 1)
		assert.Equal(t, "Flood relief", (*got)[0].Name)
	})
}

func TestGetDisaster(t *testing.T) {
	t.Run("returns matching disaster", func(t *testing.T) {
		f := newFixture(t)
		d := &models.Disaster{Name: "Flood relief", Active: true}
		require.NoError(t, f.disasters.Add(context.Background(), d))

		rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/disasters/1", nil))

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[models.Disaster](t, rr)
		assert.Equal(t, d.Name, got.Name)
	})

	t.Run("absent id is not found", func(t *testing.T) {
		f := newFixture(t)

		rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/disasters/42", nil))

		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})

	t.Run("non-integer id is a bad request", func(t *testing.T) {
		f := newFixture(t)

		rr := testutil.DoRequest(f.router, testutil.NewJSONRequest(t, http.MethodGet, "/disasters/flood", nil))

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})
}

func TestAssignVolunteer(t *testing.T) {
	assignReq := func(personID int64, start, end string) handler.AssignVolunteerRequest {
		return handler.AssignVolunteerRequest{
			DisasterID: 2,
			PersonID:   personID,
			StartDate:  start,
			EndDate:    end,
		}
	}

	t.Run("creates commitment with date-only fields", func(t *testing.T) {
		f := newFixture(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/commitments",
			assignReq(5, "2013-01-02", "2013-01-03"))
		rr := testutil.DoRequest(f.router, req)

		testutil.AssertStatus(t, rr, http.StatusCreated)
		got := testutil.UnmarshalResponse[handler.CommitmentResponse](t, rr)
		assert.Equal(t, int64(2), got.DisasterID)
		assert.Equal(t, int64(5), got.PersonID)
		assert.Equal(t, "2013-01-02", got.StartDate)
		assert.Equal(t, "2013-01-03", got.EndDate)
		assert.NotZero(t, got.ID)
	})

	t.Run("inverted range is a validation error", func(t *testing.T) {
		f := newFixture(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/commitments",
			assignReq(5, "2013-06-15", "2013-06-10"))
		rr := testutil.DoRequest(f.router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation")
	})

	t.Run("overlapping commitment is a conflict", func(t *testing.T) {
		f := newFixture(t)

		first := testutil.NewJSONRequest(t, http.MethodPost, "/commitments",
			assignReq(5, "2013-06-10", "2013-06-15"))
		testutil.AssertStatus(t, testutil.DoRequest(f.router, first), http.StatusCreated)

		second := testutil.NewJSONRequest(t, http.MethodPost, "/commitments",
			assignReq(5, "2013-06-11", "2013-06-20"))
		rr := testutil.DoRequest(f.router, second)

		testutil.AssertStatusAndError(t, rr, http.StatusConflict, "conflict")
	})

	t.Run("same dates for a different volunteer succeed", func(t *testing.T) {
		f := newFixture(t)

		first := testutil.NewJSONRequest(t, http.MethodPost, "/commitments",
			assignReq(5, "2013-06-10", "2013-06-15"))
		testutil.AssertStatus(t, testutil.DoRequest(f.router, first), http.StatusCreated)

		second := testutil.NewJSONRequest(t, http.MethodPost, "/commitments",
			assignReq(6, "2013-06-10", "2013-06-15"))
		testutil.AssertStatus(t, testutil.DoRequest(f.router, second), http.StatusCreated)
	})

	t.Run("malformed date is a bad request", func(t *testing.T) {
		f := newFixture(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/commitments",
			assignReq(5, "June 10th", "2013-06-15"))
		rr := testutil.DoRequest(f.router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("missing dates are a bad request", func(t *testing.T) {
		f := newFixture(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/commitments",
			handler.AssignVolunteerRequest{DisasterID: 2, PersonID: 5})
		rr := testutil.DoRequest(f.router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})
}
