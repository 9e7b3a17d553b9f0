package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rihla/customer-queries/internal/auth"
	apperrors "github.com/rihla/customer-queries/internal/errors"
	"github.com/rihla/customer-queries/internal/listing"
	"github.com/rihla/customer-queries/internal/model"
	"github.com/rihla/customer-queries/internal/service"
	svcMocks "github.com/rihla/customer-queries/internal/service/mocks"
	"github.com/rihla/customer-queries/internal/validation"
)

const (
	testQueryID = "ecc770d9-4576-4f72-affa-8b1454246692"
	testEmail   = "bilal@rihla.travel"
	testName    = "Bilal Ahmed"
)

type customerQueryHandlerTestSuite struct {
	suite.Suite
	app           *echo.Echo
	handler       *CustomerQueryHandler
	querySvcMock  *svcMocks.CustomerQueryService
	exportSvcMock *svcMocks.ExportService
}

func (s *customerQueryHandlerTestSuite) SetupSuite() {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		s.Require().Fail("failed to build echo validator because of missing en translations")
	}

	s.app = echo.New()
	s.app.Validator = validation.Echo(validator.New(), trans)
}

func (s *customerQueryHandlerTestSuite) SetupTest() {
	t := s.T()
	s.querySvcMock = svcMocks.NewCustomerQueryService(t)
	s.exportSvcMock = svcMocks.NewExportService(t)
	s.handler = NewCustomerQueryHandler(s.querySvcMock, s.exportSvcMock)
}

func (s *customerQueryHandlerTestSuite) TestList() {
	t := s.T()
	require := s.Require()

	t.Log("list with unknown sort column")
	{
		c, _ := s.echoGetContext("/api/v1/queries?sortBy=favouriteColour")
		err := s.handler.List(c)
		require.Error(err, "unknown sort column has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("list with search and sort applied")
	{
		params := listing.Params{Search: "lahore", SortBy: listing.KeyName, Order: listing.Descending}
		s.querySvcMock.On("List", mock.Anything, params).Return([]model.CustomerQuery{}, nil).Once()

		c, rec := s.echoGetContext("/api/v1/queries?search=lahore&sortBy=name&order=desc")
		err := s.handler.List(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")
	}
}

func (s *customerQueryHandlerTestSuite) TestGet() {
	t := s.T()
	require := s.Require()

	t.Log("get vanished customer query")
	{
		s.querySvcMock.On("FindByID", mock.Anything, testQueryID).Return(nil, nil).Once()

		c, _ := s.echoGetContext(fmt.Sprintf("/api/v1/queries/%s", testQueryID))
		c.SetParamNames("id")
		c.SetParamValues(testQueryID)

		err := s.handler.Get(c)
		require.Error(err, "record is missing but no error raised")
		require.IsType(&apperrors.EntryNotFoundErr{}, err, "error must be entry not found error")
	}

	t.Log("get customer query successfully")
	{
		s.querySvcMock.On("FindByID", mock.Anything, testQueryID).Return(&model.CustomerQuery{ID: testQueryID}, nil).Once()

		c, rec := s.echoGetContext(fmt.Sprintf("/api/v1/queries/%s", testQueryID))
		c.SetParamNames("id")
		c.SetParamValues(testQueryID)

		err := s.handler.Get(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")
	}
}

func (s *customerQueryHandlerTestSuite) TestPost() {
	t := s.T()
	require := s.Require()

	t.Log("post customer query with wrong payload")
	{
		wrongPayloadJSON := `{"name":"Ayesha Kh`
		c, _ := s.echoPostContext("/api/v1/queries", wrongPayloadJSON)
		err := s.handler.Post(c)
		require.Error(err, "wrong payload has been provided but no error raised")
		require.IsType(&echo.HTTPError{}, err, "error must be echo error")
	}

	t.Log("post customer query with invalid data in payload")
	{
		invalidJSON := `{"name":"Ayesha Khan","number":"03001234567","email":"not-an-email","queryStatus":"Interested","quotationSend":"No","query":"Honeymoon trip to Hunza"}`
		c, _ := s.echoPostContext("/api/v1/queries", invalidJSON)
		err := s.handler.Post(c)
		require.Error(err, "invalid data in payload has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("post customer query successfully")
	{
		s.querySvcMock.On("Create", mock.Anything, s.identity(), mock.AnythingOfType("*model.CustomerQuery")).
			Return(&model.CustomerQuery{ID: testQueryID, CreatedBy: testName, CreatedAt: time.Now()}, nil).Once()

		postJSON := `{"name":"Ayesha Khan","number":"03001234567","email":"ayesha@somemail.com","city":"Lahore","queryStatus":"Interested","quotationSend":"No","query":"Honeymoon trip to Hunza"}`
		c, rec := s.echoPostContext("/api/v1/queries", postJSON)
		c.Set("identity", s.identity())

		err := s.handler.Post(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusCreated, rec.Code, "response code must be Created")
	}
}

func (s *customerQueryHandlerTestSuite) TestPut() {
	t := s.T()
	require := s.Require()

	t.Log("put customer query with invalid data in payload")
	{
		invalidJSON := `{"name":"","number":"03001234567","city":"Lahore","queryStatus":"Interested","quotationSend":"No"}`
		c, _ := s.echoPutContext(fmt.Sprintf("/api/v1/queries/%s", testQueryID), testQueryID, invalidJSON)
		err := s.handler.Put(c)
		require.Error(err, "invalid data in payload has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("put customer query created by somebody else")
	{
		s.querySvcMock.On("Update", mock.Anything, s.identity(), mock.AnythingOfType("*model.CustomerQuery")).
			Return(nil, apperrors.NewAccessDeniedErr("you are not allowed to edit this customer query")).Once()

		putJSON := `{"name":"Ayesha Khan","number":"03001234567","city":"Lahore","queryStatus":"Interested","quotationSend":"No"}`
		c, _ := s.echoPutContext(fmt.Sprintf("/api/v1/queries/%s", testQueryID), testQueryID, putJSON)
		c.Set("identity", s.identity())

		err := s.handler.Put(c)
		require.Error(err, "edit is forbidden but no error raised")
		require.IsType(&apperrors.AccessDeniedErr{}, err, "error must be access denied error")
	}

	t.Log("put customer query successfully")
	{
		s.querySvcMock.On("Update", mock.Anything, s.identity(), mock.AnythingOfType("*model.CustomerQuery")).
			Return(&model.CustomerQuery{ID: testQueryID}, nil).Once()

		putJSON := `{"name":"Ayesha Siddiqui","number":"03009998877","city":"Multan","queryStatus":"Postponed","quotationSend":"Send Over Email"}`
		c, rec := s.echoPutContext(fmt.Sprintf("/api/v1/queries/%s", testQueryID), testQueryID, putJSON)
		c.Set("identity", s.identity())

		err := s.handler.Put(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response code must be OK")
	}
}

func (s *customerQueryHandlerTestSuite) TestDeleteByID() {
	t := s.T()
	require := s.Require()

	t.Log("delete customer query without admin rights")
	{
		s.querySvcMock.On("DeleteByID", mock.Anything, s.identity(), testQueryID).
			Return(apperrors.NewAccessDeniedErr("you are not allowed to delete customer queries")).Once()

		c, _ := s.echoDeleteContext("/api/v1/queries", testQueryID)
		c.Set("identity", s.identity())

		err := s.handler.DeleteByID(c)
		require.Error(err, "deletion is forbidden but no error raised")
		require.IsType(&apperrors.AccessDeniedErr{}, err, "error must be access denied error")
	}

	t.Log("delete customer query successfully")
	{
		s.querySvcMock.On("DeleteByID", mock.Anything, s.identity(), testQueryID).Return(nil).Once()

		c, rec := s.echoDeleteContext("/api/v1/queries", testQueryID)
		c.Set("identity", s.identity())

		err := s.handler.DeleteByID(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusNoContent, rec.Code, "response status must be No Content")
	}
}

func (s *customerQueryHandlerTestSuite) TestExport() {
	t := s.T()
	require := s.Require()

	t.Log("export with nothing matching the filter")
	{
		s.exportSvcMock.On("Workbook", mock.Anything, listing.Params{Search: "no such customer", Order: listing.Ascending}).
			Return(nil, service.ErrNothingToExport).Once()

		c, _ := s.echoGetContext("/api/v1/queries/export?search=no+such+customer")
		err := s.handler.Export(c)
		require.Error(err, "view is empty but no error raised")
	}

	t.Log("export successfully")
	{
		s.exportSvcMock.On("Workbook", mock.Anything, listing.Params{Order: listing.Ascending}).
			Return([]byte("workbook-bytes"), nil).Once()

		c, rec := s.echoGetContext("/api/v1/queries/export")
		err := s.handler.Export(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")
		require.Equal(xlsxContentType, rec.Header().Get(echo.HeaderContentType), "content type must be xlsx")
		require.Contains(rec.Header().Get(echo.HeaderContentDisposition), service.ExportFilename, "download must carry the fixed filename")
	}
}

func (s *customerQueryHandlerTestSuite) identity() auth.Identity {
	return auth.Identity{Email: testEmail, DisplayName: testName}
}

func (s *customerQueryHandlerTestSuite) echoGetContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *customerQueryHandlerTestSuite) echoPostContext(target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *customerQueryHandlerTestSuite) echoPutContext(target, id, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.app.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func (s *customerQueryHandlerTestSuite) echoDeleteContext(target, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodDelete, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := s.app.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestCustomerQueryHandler(t *testing.T) {
	suite.Run(t, new(customerQueryHandlerTestSuite))
}
