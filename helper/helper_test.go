package helper

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-gateway/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	t.Run("last 7 days starts a week before midnight", func(t *testing.T) {
		from, to := ResolveDateRange(PresetLast7Days, nil, nil, now)
		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.Equal(t, time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC), *from)
		assert.Equal(t, now, *to)
	})

	t.Run("calendar presets", func(t *testing.T) {
		cases := map[string]time.Time{
			PresetToday:        time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			PresetLast14Days:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			PresetMonthToDate:  time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			PresetLast3Months:  time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
			PresetLast12Months: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			PresetYearToDate:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		}
		for preset, want := range cases {
			from, _ := ResolveDateRange(preset, nil, nil, now)
			require.NotNil(t, from, preset)
			assert.Equal(t, want, *from, preset)
		}
	})

	t.Run("custom and empty keep explicit bounds", func(t *testing.T) {
		start := now.AddDate(0, 0, -2)
		for _, preset := range []string{PresetCustom, ""} {
			from, to := ResolveDateRange(preset, &start, &now, now)
			assert.Equal(t, &start, from)
			assert.Equal(t, &now, to)
		}
	})

	t.Run("unknown preset yields no bounds", func(t *testing.T) {
		from, to := ResolveDateRange("fortnight", nil, nil, now)
		assert.Nil(t, from)
		assert.Nil(t, to)
	})
}

func TestNormalizePage(t *testing.T) {
	p := NormalizePage(0, 0)
	assert.Equal(t, Paging{Page: DefaultPage, PageSize: DefaultPageSize}, p)
	assert.Equal(t, 0, p.Offset())

	// 15 rows, page 2 covers rows 11 to 15
	p = NormalizePage(2, 10)
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 10, p.Limit())

	assert.Equal(t, 500, NormalizePage(1, 500).PageSize)

	// huge pages clamp instead of overflowing the offset
	p = NormalizePage(math.MaxInt, 100)
	assert.Equal(t, math.MaxInt32/100+1, p.Page)
	assert.GreaterOrEqual(t, p.Offset(), 0)
	assert.LessOrEqual(t, p.Offset(), math.MaxInt32)

	p = NormalizePage(math.MaxInt, math.MaxInt)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, math.MaxInt32, p.Offset())

	MaxPageSize = 50
	t.Cleanup(func() { MaxPageSize = 0 })
	assert.Equal(t, 50, NormalizePage(1, 500).PageSize)
}

func TestBuildDateWhere(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	assert.True(t, BuildDateWhere(models.StatusPublished, &start, nil).Empty())
	assert.True(t, BuildDateWhere("", nil, &end).Empty())

	draft := BuildDateWhere(models.StatusDraft, &start, &end)
	assert.Equal(t, "created_at >= ? AND created_at <= ?", draft.Query)
	assert.Equal(t, []interface{}{start, end}, draft.Args)

	published := BuildDateWhere(models.StatusHighlighted, &start, &end)
	assert.Contains(t, published.Query, "date_published IS NOT NULL")
	assert.Len(t, published.Args, 2)

	combined := BuildDateWhere("", &start, &end)
	assert.Contains(t, combined.Query, "created_at")
	assert.Contains(t, combined.Query, "date_published")
	assert.Len(t, combined.Args, 6)
}

func TestHTTPHelper_NewErrorResponse(t *testing.T) {
	h := NewHTTPHelper()

	cases := []struct {
		err     error
		status  int
		code    string
		message string
	}{
		{models.BadRequest("Return date must be after departure date"), http.StatusBadRequest, CodeBadUserInput, "Return date must be after departure date"},
		{models.Unauthorized("Token expired"), http.StatusUnauthorized, CodeUnauthenticated, "Token expired"},
		{models.ErrorForbidden{Message: "nope"}, http.StatusForbidden, CodeForbidden, "nope"},
		{models.NotFound("Blog not found"), http.StatusNotFound, CodeNotFound, "Blog not found"},
		{fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), http.StatusNotFound, CodeNotFound, "Record not found"},
		{models.Conflictf("Visa duration of %d days already exists.", 30), http.StatusConflict, CodeConflict, "Visa duration of 30 days already exists."},
		{gorm.ErrDuplicatedKey, http.StatusConflict, CodeConflict, "A record with that value already exists."},
		{errors.New("connection reset"), http.StatusInternalServerError, CodeInternal, "Internal server error"},
	}
	for _, tc := range cases {
		status, res := h.NewErrorResponse(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, res.Code)
		assert.Equal(t, tc.message, res.Message)
		assert.NotNil(t, res.Errors)
	}
}

type arrivalForm struct {
	Title       string `json:"title" validate:"required"`
	ArrivalTime string `json:"arrivalTime" validate:"required,hhmm"`
}

func TestHTTPHelper_ValidateStruct(t *testing.T) {
	h := NewHTTPHelper()

	require.NoError(t, h.ValidateStruct(arrivalForm{Title: "x", ArrivalTime: "23:59"}))

	err := h.ValidateStruct(arrivalForm{ArrivalTime: "24:10"})
	var validation models.ErrorValidation
	require.ErrorAs(t, err, &validation)
	require.Len(t, validation.Fields, 2)

	fields := map[string]string{}
	for _, f := range validation.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "title is a required field", fields["title"])
	assert.Equal(t, "arrivalTime must be in HH:mm format", fields["arrivalTime"])
}

func TestHTTPHelper_ParseTimeQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	newContext := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		return c
	}

	got, err := h.ParseTimeQuery(newContext(""), "startDate")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = h.ParseTimeQuery(newContext("startDate=2025-02-01T10:00:00Z"), "startDate")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Date(2025, time.February, 1, 10, 0, 0, 0, time.UTC)))

	got, err = h.ParseTimeQuery(newContext("startDate=2025-02-01"), "startDate")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Day())

	_, err = h.ParseTimeQuery(newContext("startDate=yesterday"), "startDate")
	var badRequest models.ErrorBadRequest
	assert.ErrorAs(t, err, &badRequest)
}

func TestHTTPHelper_SendError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.SendError(c, models.Conflict("This email is already subscribed."))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"message":"This email is already subscribed.","code":"CONFLICT","errors":[]}`, w.Body.String())
}
