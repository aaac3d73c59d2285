package services

import (
	"context"
	"testing"

	"travel-gateway/models"
	"travel-gateway/repositories"
	"travel-gateway/test/testdb"

	"github.com/stretchr/testify/suite"
)

type PricingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service PricingService
}

func (s *PricingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.service = NewPricingService(repositories.NewPriceOptionRepository(testdb.New(s.T())))
}

func (s *PricingServiceTestSuite) TestClientOptionLifecycle() {
	created, err := s.service.CreateClientPriceOption(s.ctx, models.PriceOptionInput{CategoryName: " Student ", Price: 40})
	s.Require().NoError(err)
	s.Equal("Client price option created successfully", created.Message)
	s.Equal("Student", created.Item.CategoryName)

	price := 45.5
	edited, err := s.service.EditClientPriceOption(s.ctx, created.Item.ID, models.EditPriceOptionInput{Price: &price})
	s.Require().NoError(err)
	s.Equal("Client price option updated successfully", edited.Message)
	s.Equal(45.5, edited.Item.Price)

	page, err := s.service.GetClientPriceOptions(s.ctx, models.PageQuery{})
	s.Require().NoError(err)
	s.Equal(int64(1), page.Total)

	msg, err := s.service.DeleteClientPriceOption(s.ctx, created.Item.ID)
	s.Require().NoError(err)
	s.Equal("Client price option deleted successfully", msg)

	_, err = s.service.DeleteClientPriceOption(s.ctx, created.Item.ID)
	s.EqualError(err, "Client price option not found")
}

func (s *PricingServiceTestSuite) TestClientOptionNamesAreUnique() {
	_, err := s.service.CreateClientPriceOption(s.ctx, models.PriceOptionInput{CategoryName: "Adult", Price: 10})
	s.Require().NoError(err)
	other, err := s.service.CreateClientPriceOption(s.ctx, models.PriceOptionInput{CategoryName: "Child", Price: 5})
	s.Require().NoError(err)

	_, err = s.service.CreateClientPriceOption(s.ctx, models.PriceOptionInput{CategoryName: "ADULT", Price: 11})
	var conflict models.ErrorConflict
	s.Require().ErrorAs(err, &conflict)
	s.Equal(`Client category name "ADULT" already exists.`, conflict.Message)

	_, err = s.service.EditClientPriceOption(s.ctx, other.Item.ID, models.EditPriceOptionInput{CategoryName: strPtr("adult")})
	s.ErrorAs(err, &conflict)

	// Renaming an option to its own name is not a conflict.
	_, err = s.service.EditClientPriceOption(s.ctx, other.Item.ID, models.EditPriceOptionInput{CategoryName: strPtr("child")})
	s.NoError(err)
}

func (s *PricingServiceTestSuite) TestVisaOptionLifecycle() {
	created, err := s.service.CreateVisaPriceOption(s.ctx, models.VisaPriceOptionInput{DurationInDays: 14, Price: 25})
	s.Require().NoError(err)
	s.Equal("Visa price option created successfully", created.Message)

	_, err = s.service.CreateVisaPriceOption(s.ctx, models.VisaPriceOptionInput{DurationInDays: 14, Price: 30})
	s.EqualError(err, "Visa duration of 14 days already exists.")

	days := 21
	edited, err := s.service.EditVisaPriceOption(s.ctx, created.Item.ID, models.EditVisaPriceOptionInput{DurationInDays: &days})
	s.Require().NoError(err)
	s.Equal(21, edited.Item.DurationInDays)

	page, err := s.service.GetVisaPriceOptions(s.ctx, models.PageQuery{Page: 1, PageSize: 5})
	s.Require().NoError(err)
	s.Len(page.Data, 1)

	_, err = s.service.EditVisaPriceOption(s.ctx, "missing", models.EditVisaPriceOptionInput{DurationInDays: &days})
	s.EqualError(err, "Visa price option not found")

	msg, err := s.service.DeleteVisaPriceOption(s.ctx, created.Item.ID)
	s.Require().NoError(err)
	s.Equal("Visa price option deleted successfully", msg)
}

func TestPricingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}
