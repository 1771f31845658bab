package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
	"github.com/M-Vasconez/fin/internal/core/services"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	mockRateRepo     *MockConversionRateRepository
	service          portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockRateRepo = new(MockConversionRateRepository)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo, suite.mockRateRepo)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_DefaultsWhenUnset() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("GetSetting", ctx, "currency").Return("", apperrors.ErrNotFound).Once()
	suite.mockSettingsRepo.On("GetSetting", ctx, "dateFormat").Return("", apperrors.ErrNotFound).Once()
	suite.mockSettingsRepo.On("GetSetting", ctx, "userName").Return("", apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.USD, settings.Currency)
	suite.Equal(domain.DateFormatMDY, settings.DateFormat)
	suite.Equal("User", settings.UserName)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_StoredValuesWin() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("GetSetting", ctx, "currency").Return("EUR", nil).Once()
	suite.mockSettingsRepo.On("GetSetting", ctx, "dateFormat").Return("yyyy-mm-dd", nil).Once()
	suite.mockSettingsRepo.On("GetSetting", ctx, "userName").Return("Maria", nil).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.EUR, settings.Currency)
	suite.Equal(domain.DateFormatYMD, settings.DateFormat)
	suite.Equal("Maria", settings.UserName)
}

func (suite *SettingsServiceTestSuite) TestSetCurrency_FailsWithoutRate() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindConversionRate", ctx, domain.CHF).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SetCurrency(ctx, domain.CHF)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "PutSetting", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestSetCurrency_SucceedsWithRate() {
	ctx := context.Background()
	rate := &domain.ConversionRate{Currency: domain.EUR, Rate: decimal.NewFromFloat(0.85)}
	suite.mockRateRepo.On("FindConversionRate", ctx, domain.EUR).Return(rate, nil).Once()
	suite.mockSettingsRepo.On("PutSetting", ctx, "currency", "EUR").Return(nil).Once()

	err := suite.service.SetCurrency(ctx, domain.EUR)

	suite.Require().NoError(err)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestSetCurrency_BaseCurrencyNeedsNoRate() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("PutSetting", ctx, "currency", "USD").Return(nil).Once()

	err := suite.service.SetCurrency(ctx, domain.USD)

	suite.Require().NoError(err)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindConversionRate", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestConvertFromUSD_AppliesRate() {
	ctx := context.Background()
	rate := &domain.ConversionRate{Currency: domain.EUR, Rate: decimal.NewFromFloat(0.85)}
	suite.mockRateRepo.On("FindConversionRate", ctx, domain.EUR).Return(rate, nil).Once()

	converted, err := suite.service.ConvertFromUSD(ctx, decimal.NewFromInt(100), domain.EUR)

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(85)), "got %s", converted)
}

func (suite *SettingsServiceTestSuite) TestConvertFromUSD_MissingRatePassesThrough() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindConversionRate", ctx, domain.BRL).Return(nil, apperrors.ErrNotFound).Once()

	converted, err := suite.service.ConvertFromUSD(ctx, decimal.NewFromInt(100), domain.BRL)

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(100)))
}

func (suite *SettingsServiceTestSuite) TestConvertToUSD_InvertsRate() {
	ctx := context.Background()
	rate := &domain.ConversionRate{Currency: domain.JPY, Rate: decimal.NewFromInt(110)}
	suite.mockRateRepo.On("FindConversionRate", ctx, domain.JPY).Return(rate, nil).Once()

	converted, err := suite.service.ConvertToUSD(ctx, decimal.NewFromInt(1100), domain.JPY)

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(10)), "got %s", converted)
}

func (suite *SettingsServiceTestSuite) TestSetConversionRate_RejectsNonPositive() {
	ctx := context.Background()

	_, err := suite.service.SetConversionRate(ctx, domain.EUR, decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpsertConversionRate", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestSetConversionRate_StampsLastUpdated() {
	ctx := context.Background()
	suite.mockRateRepo.On("UpsertConversionRate", ctx, mock.MatchedBy(func(r domain.ConversionRate) bool {
		return r.Currency == domain.CAD && r.Rate.Equal(decimal.NewFromFloat(1.25)) && !r.LastUpdated.IsZero()
	})).Return(nil).Once()

	rate, err := suite.service.SetConversionRate(ctx, domain.CAD, decimal.NewFromFloat(1.25))

	suite.Require().NoError(err)
	suite.WithinDuration(time.Now(), rate.LastUpdated, time.Minute)
}

func (suite *SettingsServiceTestSuite) TestFormatCurrency_ConvertsThenRenders() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("GetSetting", ctx, "currency").Return("EUR", nil).Once()
	suite.mockSettingsRepo.On("GetSetting", ctx, "dateFormat").Return("", apperrors.ErrNotFound).Once()
	suite.mockSettingsRepo.On("GetSetting", ctx, "userName").Return("", apperrors.ErrNotFound).Once()
	rate := &domain.ConversionRate{Currency: domain.EUR, Rate: decimal.NewFromFloat(0.85)}
	suite.mockRateRepo.On("FindConversionRate", ctx, domain.EUR).Return(rate, nil).Once()

	formatted, err := suite.service.FormatCurrency(ctx, decimal.NewFromInt(100))

	suite.Require().NoError(err)
	suite.Equal("€85.00", formatted)
}

func (suite *SettingsServiceTestSuite) TestFormatDate_UsesStoredPreference() {
	ctx := context.Background()
	suite.mockSettingsRepo.On("GetSetting", ctx, "currency").Return("", apperrors.ErrNotFound).Once()
	suite.mockSettingsRepo.On("GetSetting", ctx, "dateFormat").Return("yyyy-mm-dd", nil).Once()
	suite.mockSettingsRepo.On("GetSetting", ctx, "userName").Return("", apperrors.ErrNotFound).Once()

	formatted, err := suite.service.FormatDate(ctx, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.Equal("2024-03-09", formatted)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency domain.Currency
		want     string
	}{
		{"usd with cents", decimal.NewFromFloat(1234.56), domain.USD, "$1,234.56"},
		{"jpy has no minor units", decimal.NewFromInt(110000), domain.JPY, "¥110,000"},
		{"negative usd", decimal.NewFromFloat(-42.50), domain.USD, "-$42.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.FormatAmount(tt.amount, tt.currency))
		})
	}
}

func TestGoLayoutFor(t *testing.T) {
	ts := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "09/03/2024", ts.Format(services.GoLayoutFor(domain.DateFormatDMY)))
	assert.Equal(t, "03/09/2024", ts.Format(services.GoLayoutFor(domain.DateFormatMDY)))
	assert.Equal(t, "2024-03-09", ts.Format(services.GoLayoutFor(domain.DateFormatYMD)))
	// Unknown formats fall back to the default rendering.
	assert.Equal(t, "03/09/2024", ts.Format(services.GoLayoutFor(domain.DateFormat("bogus"))))
}
