package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jarin-io/api/internal/auth"
	"jarin-io/api/internal/middleware"
	"jarin-io/api/pkg/models"
)

// fakeCompanyService records what the controller hands it.
type fakeCompanyService struct {
	createdReq  models.CompanyRequest
	createdLogo string
	createCalls int
	createdId   primitive.ObjectID

	updatedReq  models.CompanyRequest
	updatedLogo string

	company *models.Company
}

func (f *fakeCompanyService) CreateCompany(_ context.Context, req models.CompanyRequest, logoURL string) (primitive.ObjectID, error) {
	f.createCalls++
	f.createdReq = req
	f.createdLogo = logoURL
	return f.createdId, nil
}

func (f *fakeCompanyService) GetCompany(_ context.Context, _ primitive.ObjectID) (*models.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyService) DefaultCompany(_ context.Context) (*models.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyService) UpdateCompany(_ context.Context, _ primitive.ObjectID, req models.CompanyRequest, logoURL string) error {
	f.updatedReq = req
	f.updatedLogo = logoURL
	return nil
}

// fakeSessionKV backs the session store with an in-process map.
type fakeSessionKV struct {
	data map[string]string
}

func (f *fakeSessionKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	bin, err := value.(interface{ MarshalBinary() ([]byte, error) }).MarshalBinary()
	if err != nil {
		return redis.NewStatusResult("", err)
	}
	f.data[key] = string(bin)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeSessionKV) Get(_ context.Context, key string) *redis.StringCmd {
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeSessionKV) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func companyMultipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func newCompanyRouter(svc *fakeCompanyService, sessions *auth.SessionStore, token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cc := InitCompanyController(svc, sessions)
	withToken := func(c *gin.Context) { c.Set(middleware.ContextToken, token) }
	router.POST("/company", withToken, cc.CreateCompany())
	router.PUT("/company/:companyid", withToken, cc.UpdateCompany())

	return router
}

func TestCreateCompanyMultipart(t *testing.T) {
	token := "token-a"
	kv := &fakeSessionKV{data: map[string]string{}}
	sessions := auth.NewSessionStore(kv)
	require.NoError(t, sessions.Init(context.Background(), token, auth.AdminSession{UserId: "u1", Username: "admin"}))

	svc := &fakeCompanyService{createdId: primitive.NewObjectID()}
	router := newCompanyRouter(svc, sessions, token)

	t.Run("binds bracketed multipart fields", func(t *testing.T) {
		body, contentType := companyMultipartBody(t, map[string]string{
			"name":                   "Jarin Jewelry",
			"taxId":                  "0105561000000",
			"phone":                  "021234567",
			"email":                  "office@jarin.example",
			"address[line]":          "88 Silom Rd",
			"address[provinceId]":    "64a000000000000000000001",
			"address[districtId]":    "64a000000000000000000002",
			"address[subDistrictId]": "64a000000000000000000003",
			"address[zipcode]":       "10500",
		})

		req := httptest.NewRequest(http.MethodPost, "/company", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "Jarin Jewelry", svc.createdReq.Name)
		assert.Equal(t, "0105561000000", svc.createdReq.TaxID)
		assert.Equal(t, "021234567", svc.createdReq.Phone)
		assert.Equal(t, "88 Silom Rd", svc.createdReq.Address.Line)
		assert.Equal(t, "64a000000000000000000001", svc.createdReq.Address.ProvinceID)
		assert.Equal(t, "10500", svc.createdReq.Address.Zipcode)
		assert.Empty(t, svc.createdLogo)

		var resp struct {
			Data struct {
				CompanyId string `json:"companyId"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, svc.createdId.Hex(), resp.Data.CompanyId)

		session, err := sessions.Get(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, svc.createdId.Hex(), session.CompanyId)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		before := svc.createCalls

		body, contentType := companyMultipartBody(t, map[string]string{
			"taxId": "0105561000000",
		})

		req := httptest.NewRequest(http.MethodPost, "/company", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, before, svc.createCalls)
	})

	t.Run("json body rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/company", bytes.NewBufferString(`{"name":"Jarin Jewelry"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateCompanyMultipart(t *testing.T) {
	token := "token-b"
	kv := &fakeSessionKV{data: map[string]string{}}
	sessions := auth.NewSessionStore(kv)

	svc := &fakeCompanyService{}
	router := newCompanyRouter(svc, sessions, token)

	body, contentType := companyMultipartBody(t, map[string]string{
		"name":             "Jarin Jewelry Co",
		"address[zipcode]": "10110",
	})

	req := httptest.NewRequest(http.MethodPut, "/company/"+primitive.NewObjectID().Hex(), body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Jarin Jewelry Co", svc.updatedReq.Name)
	assert.Equal(t, "10110", svc.updatedReq.Address.Zipcode)
	assert.Empty(t, svc.updatedLogo)
}
