package services_test

import (
	"context"
	"testing"

	"github.com/PPKK-Project/Tlan/internal/apperrors"
	"github.com/PPKK-Project/Tlan/internal/core/domain"
	portssvc "github.com/PPKK-Project/Tlan/internal/core/ports/services"
	"github.com/PPKK-Project/Tlan/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AirportSvc ---
type MockAirportSvc struct {
	mock.Mock
}

func (m *MockAirportSvc) SeedAirportsIfEmpty(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAirportSvc) GetAirportByCode(ctx context.Context, code string) (*domain.Airport, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportSvc) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

// --- Mock RateSyncSvc ---
type MockRateSyncSvc struct {
	mock.Mock
}

func (m *MockRateSyncSvc) SyncCurrencyRates(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRateSyncSvc) SyncAndRebuild(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Mock SafetyCacheSvc ---
type MockSafetyCacheSvc struct {
	mock.Mock
}

func (m *MockSafetyCacheSvc) RefreshSafetyCache(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSafetyCacheSvc) CachedSafetyList() []domain.SafetyEntry {
	args := m.Called()
	return args.Get(0).([]domain.SafetyEntry)
}

// --- Test Suite ---
type BootstrapServiceTestSuite struct {
	suite.Suite
	mockAirports *MockAirportSvc
	mockRates    *MockRateSyncSvc
	mockCountry  *MockCountryInfoSvc
	mockSafety   *MockSafetyCacheSvc
	service      portssvc.BootstrapSvc

	callOrder []string
}

func (suite *BootstrapServiceTestSuite) SetupTest() {
	suite.mockAirports = new(MockAirportSvc)
	suite.mockRates = new(MockRateSyncSvc)
	suite.mockCountry = new(MockCountryInfoSvc)
	suite.mockSafety = new(MockSafetyCacheSvc)
	suite.callOrder = nil
	suite.service = services.NewBootstrapService(suite.mockAirports, suite.mockRates, suite.mockCountry, suite.mockSafety, testLogger())
}

func (suite *BootstrapServiceTestSuite) record(step string) func(mock.Arguments) {
	return func(mock.Arguments) {
		suite.callOrder = append(suite.callOrder, step)
	}
}

// --- Test Cases ---

func (suite *BootstrapServiceTestSuite) TestRun_StepsExecuteInOrder() {
	ctx := context.Background()

	suite.mockAirports.On("SeedAirportsIfEmpty", ctx).Run(suite.record("seed")).Return(nil).Once()
	suite.mockRates.On("SyncCurrencyRates", ctx).Run(suite.record("sync")).Return(163, nil).Once()
	suite.mockCountry.On("RebuildCountryInfo", ctx).Run(suite.record("rebuild")).Return(nil).Once()
	suite.mockSafety.On("RefreshSafetyCache", ctx).Run(suite.record("safety")).Return(nil).Once()

	err := suite.service.Run(ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"seed", "sync", "rebuild", "safety"}, suite.callOrder)
}

func (suite *BootstrapServiceTestSuite) TestRun_ProviderFaultDuringSyncIsTolerated() {
	ctx := context.Background()

	suite.mockAirports.On("SeedAirportsIfEmpty", ctx).Return(nil).Once()
	suite.mockRates.On("SyncCurrencyRates", ctx).Return(0, apperrors.ErrNetwork).Once()
	// The rebuild still runs over whatever rates are already stored.
	suite.mockCountry.On("RebuildCountryInfo", ctx).Return(nil).Once()
	suite.mockSafety.On("RefreshSafetyCache", ctx).Return(nil).Once()

	err := suite.service.Run(ctx)

	suite.Require().NoError(err)
	suite.mockCountry.AssertExpectations(suite.T())
}

func (suite *BootstrapServiceTestSuite) TestRun_StorageFaultDuringSeedIsFatal() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockAirports.On("SeedAirportsIfEmpty", ctx).Return(expectedErr).Once()

	err := suite.service.Run(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockRates.AssertNotCalled(suite.T(), "SyncCurrencyRates", mock.Anything)
	suite.mockSafety.AssertNotCalled(suite.T(), "RefreshSafetyCache", mock.Anything)
}

func (suite *BootstrapServiceTestSuite) TestRun_StorageFaultDuringSyncIsFatal() {
	ctx := context.Background()
	expectedErr := assert.AnError // not a provider-class error

	suite.mockAirports.On("SeedAirportsIfEmpty", ctx).Return(nil).Once()
	suite.mockRates.On("SyncCurrencyRates", ctx).Return(0, expectedErr).Once()

	err := suite.service.Run(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockCountry.AssertNotCalled(suite.T(), "RebuildCountryInfo", mock.Anything)
}

func (suite *BootstrapServiceTestSuite) TestRun_RebuildFaultIsFatal() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockAirports.On("SeedAirportsIfEmpty", ctx).Return(nil).Once()
	suite.mockRates.On("SyncCurrencyRates", ctx).Return(163, nil).Once()
	suite.mockCountry.On("RebuildCountryInfo", ctx).Return(expectedErr).Once()

	err := suite.service.Run(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockSafety.AssertNotCalled(suite.T(), "RefreshSafetyCache", mock.Anything)
}

func (suite *BootstrapServiceTestSuite) TestRun_SafetyFailureIsTolerated() {
	ctx := context.Background()

	suite.mockAirports.On("SeedAirportsIfEmpty", ctx).Return(nil).Once()
	suite.mockRates.On("SyncCurrencyRates", ctx).Return(163, nil).Once()
	suite.mockCountry.On("RebuildCountryInfo", ctx).Return(nil).Once()
	suite.mockSafety.On("RefreshSafetyCache", ctx).Return(apperrors.ErrProvider).Once()

	err := suite.service.Run(ctx)

	suite.Require().NoError(err)
}

// --- Run Suite ---
func TestBootstrapService(t *testing.T) {
	suite.Run(t, new(BootstrapServiceTestSuite))
}
