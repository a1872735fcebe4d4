package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/RamaTay/DecorERP/internal/core/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	service      *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewCurrencyService(suite.mockRateRepo)
}

func (suite *CurrencyServiceTestSuite) TestCurrentRate_UsesDefault() {
	ctx := context.Background()
	stored := &domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		Rate:           decimal.NewFromInt(14500),
		IsDefault:      true,
	}
	suite.mockRateRepo.On("FindDefaultRate", ctx).Return(stored, nil).Once()

	rate, bootstrap, err := suite.service.CurrentRate(ctx)

	suite.Require().NoError(err)
	suite.False(bootstrap)
	suite.True(rate.Equal(decimal.NewFromInt(14500)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCurrentRate_BootstrapFallback() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindDefaultRate", ctx).Return(nil, apperrors.ErrNotFound).Once()

	rate, bootstrap, err := suite.service.CurrentRate(ctx)

	suite.Require().NoError(err)
	suite.True(bootstrap)
	suite.True(rate.Equal(decimal.NewFromInt(13000)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestRateForDate_HistoricalResolution() {
	ctx := context.Background()
	asOf := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	stored := &domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		Rate:           decimal.NewFromInt(12800),
		CreatedAt:      asOf.Add(-48 * time.Hour),
	}
	suite.mockRateRepo.On("FindRateAsOf", ctx, asOf).Return(stored, nil).Once()

	rate, err := suite.service.RateForDate(ctx, asOf)

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(12800)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestRateForDate_NothingPredates_FallsBackToCurrent() {
	ctx := context.Background()
	asOf := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRateRepo.On("FindRateAsOf", ctx, asOf).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("FindDefaultRate", ctx).Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.RateForDate(ctx, asOf)

	suite.Require().NoError(err)
	suite.True(rate.Equal(domain.BootstrapExchangeRate))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateDefaultRate_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.UpdateExchangeRateRequest{Rate: decimal.NewFromInt(14000)}

	suite.mockRateRepo.On("SaveDefaultRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).Return(nil).Once()

	rate, err := suite.service.UpdateDefaultRate(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.NotEmpty(rate.ExchangeRateID)
	suite.True(rate.IsDefault)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(14000)))
	suite.Equal(creatorUserID, rate.CreatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateDefaultRate_RejectsNonPositive() {
	ctx := context.Background()

	rate, err := suite.service.UpdateDefaultRate(ctx, dto.UpdateExchangeRateRequest{Rate: decimal.Zero}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "must be positive")
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveDefaultRate")
}

func (suite *CurrencyServiceTestSuite) TestConvert_USDToSYPWithExplicitRate() {
	ctx := context.Background()
	rate := decimal.NewFromInt(13000)

	converted, err := suite.service.Convert(ctx, decimal.NewFromFloat(4.37), domain.CurrencyUSD, domain.CurrencySYP, &rate)

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(56810)), "got %s", converted)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindDefaultRate")
}

func (suite *CurrencyServiceTestSuite) TestConvert_NilRateMeansCurrentDefault() {
	ctx := context.Background()
	stored := &domain.ExchangeRate{Rate: decimal.NewFromInt(13000), IsDefault: true}
	suite.mockRateRepo.On("FindDefaultRate", ctx).Return(stored, nil).Once()

	converted, err := suite.service.Convert(ctx, decimal.NewFromInt(26000), domain.CurrencySYP, domain.CurrencyUSD, nil)

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(2)), "got %s", converted)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestConvert_RejectsNonPositiveExplicitRate() {
	ctx := context.Background()
	rate := decimal.Zero

	_, err := suite.service.Convert(ctx, decimal.NewFromInt(10), domain.CurrencyUSD, domain.CurrencySYP, &rate)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestFormat_SYP() {
	ctx := context.Background()

	formatted, err := suite.service.Format(ctx, decimal.NewFromInt(1), domain.CurrencySYP, decimal.NewFromInt(13000))

	suite.Require().NoError(err)
	suite.Equal("13,000 SYP", formatted)
}

func (suite *CurrencyServiceTestSuite) TestFormat_UnknownCurrency() {
	ctx := context.Background()

	_, err := suite.service.Format(ctx, decimal.NewFromInt(1), domain.Currency("EUR"), decimal.NewFromInt(13000))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestListExchangeRates_EmptyHistory() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindExchangeRates", ctx, 50, 0).Return(nil, nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx, 50, 0)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
