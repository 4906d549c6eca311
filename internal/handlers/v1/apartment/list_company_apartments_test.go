package apartment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nordfast/estate-server/internal/service"
)

// mockListService is a mock for apartmentLister.
type mockListService struct {
	mock.Mock
}

func (m *mockListService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]service.Apartment, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Apartment), args.Error(1)
}

func (m *mockListService) ExpiringLeases(ctx context.Context, companyID uuid.UUID, within time.Duration) ([]service.Apartment, error) {
	args := m.Called(ctx, companyID, within)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Apartment), args.Error(1)
}

// newListTestAPI registers the handler against a humatest API and returns it.
func newListTestAPI(t *testing.T, svc apartmentLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListCompanyApartmentsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListCompanyApartments_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	apartments := []service.Apartment{*serviceApartment(), *serviceApartment()}

	mockSvc := new(mockListService)
	mockSvc.On("ListByCompany", mock.Anything, companyID).Return(apartments, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/company/" + companyID.String() + "/apartments")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCompanyApartmentsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Apartments, 2)
	mockSvc.AssertNotCalled(t, "ExpiringLeases")
}

func TestHTTP_ListCompanyApartments_ExpiringWindow(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockListService)
	mockSvc.On("ExpiringLeases", mock.Anything, companyID, 30*24*time.Hour).
		Return([]service.Apartment{*serviceApartment()}, nil)

	resp := newListTestAPI(t, mockSvc).Get(
		"/v1/company/" + companyID.String() + "/apartments?expiringWithinDays=30")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCompanyApartmentsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Apartments, 1)
	mockSvc.AssertNotCalled(t, "ListByCompany")
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListCompanyApartments_Empty(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockListService)
	mockSvc.On("ListByCompany", mock.Anything, companyID).Return([]service.Apartment{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/company/" + companyID.String() + "/apartments")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCompanyApartmentsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Apartments)
}

func TestHTTP_ListCompanyApartments_InvalidCompanyID(t *testing.T) {
	mockSvc := new(mockListService)

	resp := newListTestAPI(t, mockSvc).Get("/v1/company/not-a-uuid/apartments")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListByCompany")
}

func TestHTTP_ListCompanyApartments_NegativeWindow(t *testing.T) {
	mockSvc := new(mockListService)

	// minimum:"0" is enforced by Huma before the handler runs.
	resp := newListTestAPI(t, mockSvc).Get(
		"/v1/company/" + uuid.Must(uuid.NewV4()).String() + "/apartments?expiringWithinDays=-1")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ExpiringLeases")
}

func TestHTTP_ListCompanyApartments_ServiceError(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockListService)
	mockSvc.On("ListByCompany", mock.Anything, companyID).Return(nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/company/" + companyID.String() + "/apartments")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
