package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
	"github.com/M-Vasconez/fin/internal/core/services"
	"github.com/M-Vasconez/fin/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Main Checking",
		AccountType: domain.DebitCard,
		Balance:     decimal.NewFromFloat(2500.00),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(req.Name, created.Name)
	suite.True(created.IsActive)
	suite.Equal(domain.DefaultUserID, created.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CreditCardWithDebt() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Visa",
		AccountType: domain.CreditCard,
		Balance:     decimal.NewFromFloat(-850.00),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Balance.Equal(decimal.NewFromFloat(-850.00))
	})).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	display := created.DisplayBalance()
	suite.True(display.IsDebt)
	suite.True(display.Amount.Equal(decimal.NewFromFloat(850.00)))
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID:   "acc-1",
		Name:        "Old Name",
		AccountType: domain.Cash,
		Balance:     decimal.NewFromInt(100),
		Description: "keep me",
		IsActive:    true,
	}
	newName := "New Name"

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == newName && acc.Description == "keep me"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, "acc-1", dto.UpdateAccountRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal("keep me", updated.Description)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateAccount(ctx, "missing", dto.UpdateAccountRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: "acc-1", IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(existing, nil).Once()
	suite.mockRepo.On("DeactivateAccount", ctx, "acc-1", domain.DefaultUserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, "acc-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestReplaceAllAccounts_RejectsMissingIdentity() {
	ctx := context.Background()
	accounts := []domain.Account{{AccountID: "", Name: "Nameless"}}

	err := suite.service.ReplaceAllAccounts(ctx, accounts)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceAllAccounts", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
