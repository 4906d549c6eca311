package webhook

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nordfast/estate-server/internal/logging"
	"github.com/nordfast/estate-server/internal/storage/apartment"
)

// mockApartmentsTable is a mock for apartmentUpdater.
type mockApartmentsTable struct {
	mock.Mock
}

func (m *mockApartmentsTable) FindByID(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apartment.Apartment), args.Error(1)
}

func (m *mockApartmentsTable) Update(ctx context.Context, ap *apartment.Apartment) (int64, error) {
	args := m.Called(ctx, ap)
	return args.Get(0).(int64), args.Error(1)
}

func newTestProcessor(t *testing.T) (*Processor, *mockApartmentsTable) {
	t.Helper()
	table := new(mockApartmentsTable)
	return NewProcessor(logging.SetupLogging(), table), table
}

func storedApartment(id uuid.UUID) *apartment.Apartment {
	return &apartment.Apartment{
		ApartmentID:  id,
		CompanyID:    uuid.Must(uuid.NewV4()),
		Address:      "Storgatan 1",
		RentPerMonth: decimal.RequireFromString("8500"),
		IsOccupied:   false,
	}
}

func TestApplyAttributeUpdate_Success(t *testing.T) {
	processor, table := newTestProcessor(t)
	id := uuid.Must(uuid.NewV4())
	occupied := true
	rent := decimal.RequireFromString("9000")

	table.On("FindByID", mock.Anything, id).Return(storedApartment(id), nil)
	table.On("Update", mock.Anything, mock.MatchedBy(func(ap *apartment.Apartment) bool {
		return ap.ApartmentID == id &&
			ap.IsOccupied == true &&
			ap.RentPerMonth.Equal(rent)
	})).Return(int64(1), nil)

	result := processor.ApplyAttributeUpdate(context.Background(), &AttributeUpdate{
		ApartmentID:  id,
		SourceID:     "erp-7",
		IsOccupied:   &occupied,
		RentPerMonth: &rent,
	})

	assert.True(t, result.Success())
	assert.Equal(t, http.StatusOK, result.HTTPStatus())
	assert.Equal(t, id, result.ApartmentID)
	assert.Equal(t, "erp-7", result.SourceID)
	table.AssertExpectations(t)
}

func TestApplyAttributeUpdate_NilPayload(t *testing.T) {
	processor, table := newTestProcessor(t)

	result := processor.ApplyAttributeUpdate(context.Background(), nil)

	assert.False(t, result.Success())
	assert.Equal(t, http.StatusBadRequest, result.HTTPStatus())
	assert.Equal(t, "NULL_PAYLOAD", result.ErrorCode)
	table.AssertNotCalled(t, "FindByID")
}

func TestApplyAttributeUpdate_ValidationFailureSkipsStorage(t *testing.T) {
	processor, table := newTestProcessor(t)
	id := uuid.Must(uuid.NewV4())
	rent := decimal.RequireFromString("1200000")

	result := processor.ApplyAttributeUpdate(context.Background(), &AttributeUpdate{
		ApartmentID:  id,
		RentPerMonth: &rent,
	})

	assert.False(t, result.Success())
	assert.Equal(t, http.StatusBadRequest, result.HTTPStatus())
	assert.Equal(t, "VALIDATION_FAILED", result.ErrorCode)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, "rentPerMonth", result.Errors[0].Field)
	assert.Equal(t, "MaxValue", result.Errors[0].ValidationRule)
	table.AssertNotCalled(t, "FindByID")
	table.AssertNotCalled(t, "Update")
}

func TestApplyAttributeUpdate_NotFound(t *testing.T) {
	processor, table := newTestProcessor(t)
	id := uuid.Must(uuid.NewV4())

	table.On("FindByID", mock.Anything, id).Return(nil, nil)

	result := processor.ApplyAttributeUpdate(context.Background(), &AttributeUpdate{ApartmentID: id})

	assert.Equal(t, http.StatusNotFound, result.HTTPStatus())
	assert.Equal(t, "APARTMENT_NOT_FOUND", result.ErrorCode)
	table.AssertNotCalled(t, "Update")
}

func TestApplyAttributeUpdate_FetchError(t *testing.T) {
	processor, table := newTestProcessor(t)
	id := uuid.Must(uuid.NewV4())

	table.On("FindByID", mock.Anything, id).Return(nil, errors.New("connection refused"))

	result := processor.ApplyAttributeUpdate(context.Background(), &AttributeUpdate{ApartmentID: id})

	assert.Equal(t, http.StatusInternalServerError, result.HTTPStatus())
	assert.Equal(t, "INTERNAL_ERROR", result.ErrorCode)
	table.AssertNotCalled(t, "Update")
}

func TestApplyAttributeUpdate_PersistError(t *testing.T) {
	processor, table := newTestProcessor(t)
	id := uuid.Must(uuid.NewV4())

	table.On("FindByID", mock.Anything, id).Return(storedApartment(id), nil)
	table.On("Update", mock.Anything, mock.Anything).Return(int64(0), errors.New("database unavailable"))

	result := processor.ApplyAttributeUpdate(context.Background(), &AttributeUpdate{ApartmentID: id})

	assert.Equal(t, http.StatusInternalServerError, result.HTTPStatus())
	assert.Equal(t, "INTERNAL_ERROR", result.ErrorCode)
}

func TestApplyAttributeUpdate_ZeroRowsAffected(t *testing.T) {
	processor, table := newTestProcessor(t)
	id := uuid.Must(uuid.NewV4())

	table.On("FindByID", mock.Anything, id).Return(storedApartment(id), nil)
	table.On("Update", mock.Anything, mock.Anything).Return(int64(0), nil)

	result := processor.ApplyAttributeUpdate(context.Background(), &AttributeUpdate{ApartmentID: id})

	assert.Equal(t, http.StatusInternalServerError, result.HTTPStatus())
	assert.Equal(t, "SAVE_FAILED", result.ErrorCode)
}

func TestApplyAttributeUpdate_OccupancyOnlyLeavesRentUnchanged(t *testing.T) {
	processor, table := newTestProcessor(t)
	id := uuid.Must(uuid.NewV4())
	stored := storedApartment(id)
	originalRent := stored.RentPerMonth
	occupied := true

	table.On("FindByID", mock.Anything, id).Return(stored, nil)
	table.On("Update", mock.Anything, mock.MatchedBy(func(ap *apartment.Apartment) bool {
		return ap.RentPerMonth.Equal(originalRent) && ap.IsOccupied == true
	})).Return(int64(1), nil)

	result := processor.ApplyAttributeUpdate(context.Background(), &AttributeUpdate{
		ApartmentID: id,
		IsOccupied:  &occupied,
	})

	assert.True(t, result.Success())
	table.AssertExpectations(t)
}

func TestApplyAttributeUpdate_RentOnlyLeavesOccupancyUnchanged(t *testing.T) {
	processor, table := newTestProcessor(t)
	id := uuid.Must(uuid.NewV4())
	stored := storedApartment(id)
	rent := decimal.RequireFromString("7000")

	table.On("FindByID", mock.Anything, id).Return(stored, nil)
	table.On("Update", mock.Anything, mock.MatchedBy(func(ap *apartment.Apartment) bool {
		return ap.RentPerMonth.Equal(rent) && ap.IsOccupied == false
	})).Return(int64(1), nil)

	result := processor.ApplyAttributeUpdate(context.Background(), &AttributeUpdate{
		ApartmentID:  id,
		RentPerMonth: &rent,
	})

	assert.True(t, result.Success())
	table.AssertExpectations(t)
}

func TestApplyAttributeUpdate_RepeatedPayloadPersistsTwice(t *testing.T) {
	processor, table := newTestProcessor(t)
	id := uuid.Must(uuid.NewV4())
	rent := decimal.RequireFromString("7000")

	table.On("FindByID", mock.Anything, id).Return(storedApartment(id), nil)
	table.On("Update", mock.Anything, mock.Anything).Return(int64(1), nil)

	payload := &AttributeUpdate{ApartmentID: id, RentPerMonth: &rent}
	first := processor.ApplyAttributeUpdate(context.Background(), payload)
	second := processor.ApplyAttributeUpdate(context.Background(), payload)

	assert.True(t, first.Success())
	assert.True(t, second.Success())
	table.AssertNumberOfCalls(t, "Update", 2)
}
