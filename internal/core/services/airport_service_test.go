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

// --- Mock AirportRepository ---
type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) CountAirports(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAirportRepository) SaveAirports(ctx context.Context, airports []domain.Airport) error {
	args := m.Called(ctx, airports)
	return args.Error(0)
}

func (m *MockAirportRepository) FindAirportByCode(ctx context.Context, code string) (*domain.Airport, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

// --- Test Suite ---
type AirportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAirportRepository
	seed     []domain.Airport
	service  portssvc.AirportSvc
}

func (suite *AirportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAirportRepository)
	suite.seed = []domain.Airport{
		{Code: "ICN", Name: "인천", Country: "대한민국", City: "서울/인천"},
		{Code: "NRT", Name: "도쿄/나리타", Country: "일본", City: "도쿄"},
	}
	suite.service = services.NewAirportService(suite.mockRepo, suite.seed, testLogger())
}

// --- Test Cases ---

func (suite *AirportServiceTestSuite) TestSeed_EmptyStorageInsertsCatalog() {
	ctx := context.Background()

	suite.mockRepo.On("CountAirports", ctx).Return(int64(0), nil).Once()
	suite.mockRepo.On("SaveAirports", ctx, suite.seed).Return(nil).Once()

	err := suite.service.SeedAirportsIfEmpty(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AirportServiceTestSuite) TestSeed_SecondRunIsNoOp() {
	ctx := context.Background()

	suite.mockRepo.On("CountAirports", ctx).Return(int64(2), nil).Once()

	err := suite.service.SeedAirportsIfEmpty(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAirports", mock.Anything, mock.Anything)
}

func (suite *AirportServiceTestSuite) TestSeed_CountFault() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("CountAirports", ctx).Return(int64(0), expectedErr).Once()

	err := suite.service.SeedAirportsIfEmpty(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAirports", mock.Anything, mock.Anything)
}

func (suite *AirportServiceTestSuite) TestGetAirportByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAirportByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	airport, err := suite.service.GetAirportByCode(ctx, "ZZZ")

	suite.Require().Error(err)
	suite.Nil(airport)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AirportServiceTestSuite) TestListAirports_Success() {
	ctx := context.Background()

	suite.mockRepo.On("ListAirports", ctx).Return(suite.seed, nil).Once()

	airports, err := suite.service.ListAirports(ctx)

	suite.Require().NoError(err)
	suite.Equal(suite.seed, airports)
}

// --- Run Suite ---
func TestAirportService(t *testing.T) {
	suite.Run(t, new(AirportServiceTestSuite))
}
