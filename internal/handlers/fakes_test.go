package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"healthbridge-api/internal/config"
	"healthbridge-api/internal/middleware"
	"healthbridge-api/internal/models"
	"healthbridge-api/internal/store"
	"healthbridge-api/internal/utils"
)

type fakeStore struct {
	admins   map[string]*models.SuperAdmin
	users    map[string]*models.User
	owners   map[primitive.ObjectID]*models.BusinessOwner
	services []models.Service
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		admins: map[string]*models.SuperAdmin{},
		users:  map[string]*models.User{},
		owners: map[primitive.ObjectID]*models.BusinessOwner{},
	}
}

func (f *fakeStore) FindAdminByEmail(ctx context.Context, email string) (*models.SuperAdmin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return admin, nil
}

func (f *fakeStore) InsertAdmin(ctx context.Context, admin *models.SuperAdmin) error {
	if _, ok := f.admins[admin.Email]; ok {
		return store.ErrDuplicate
	}
	f.admins[admin.Email] = admin
	return nil
}

func (f *fakeStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeStore) InsertUser(ctx context.Context, user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return store.ErrDuplicate
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeStore) FindOwnerByEmail(ctx context.Context, email string) (*models.BusinessOwner, error) {
	for _, o := range f.owners {
		if o.Email == email {
			return o, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) FindOwnerByID(ctx context.Context, id primitive.ObjectID) (*models.BusinessOwner, error) {
	owner, ok := f.owners[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return owner, nil
}

func (f *fakeStore) InsertOwner(ctx context.Context, owner *models.BusinessOwner) error {
	for _, o := range f.owners {
		if o.Email == owner.Email || o.CompanyEmail == owner.CompanyEmail {
			return store.ErrDuplicate
		}
	}
	f.owners[owner.ID] = owner
	return nil
}

func (f *fakeStore) UpdatePhlebotomists(ctx context.Context, id primitive.ObjectID, roster []models.Phlebotomist) error {
	owner, ok := f.owners[id]
	if !ok {
		return store.ErrNotFound
	}
	owner.Phlebotomists = roster
	return nil
}

func (f *fakeStore) ListOwners(ctx context.Context) ([]models.BusinessOwner, error) {
	owners := []models.BusinessOwner{}
	for _, o := range f.owners {
		owners = append(owners, *o)
	}
	return owners, nil
}

func (f *fakeStore) InsertService(ctx context.Context, svc *models.Service) error {
	f.services = append(f.services, *svc)
	return nil
}

func (f *fakeStore) ListServices(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	services = append(services, f.services...)
	return services, nil
}

type sentEmail struct {
	to       string
	subject  string
	textBody string
	htmlBody string
}

type fakeMailer struct {
	sent    []sentEmail
	failErr error
}

func (f *fakeMailer) SendEmail(to, subject, textBody, htmlBody string) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.sent = append(f.sent, sentEmail{to: to, subject: subject, textBody: textBody, htmlBody: htmlBody})
	return nil
}

type sentSMS struct {
	to   string
	body string
}

type fakeSMS struct {
	sent    []sentSMS
	failErr error
}

func (f *fakeSMS) SendSMS(ctx context.Context, to, body string) (string, error) {
	if f.failErr != nil {
		return "", f.failErr
	}
	f.sent = append(f.sent, sentSMS{to: to, body: body})
	return "SM_fake", nil
}

var errProviderDown = errors.New("provider rejected the message")

type testEnv struct {
	store  *fakeStore
	mailer *fakeMailer
	sms    *fakeSMS
	router *gin.Engine
}

// setup wires the handlers behind the same routes main registers.
func setup(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	st := newFakeStore()
	mailer := &fakeMailer{}
	sms := &fakeSMS{}
	cfg := &config.Config{PlatformBaseURL: "https://platform.test"}
	h := NewHandler(st, mailer, sms, cfg)

	r := gin.New()
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/superadmin/register", h.RegisterSuperAdmin)
		authRoutes.POST("/superadmin/login", h.LoginSuperAdmin)
		authRoutes.POST("/validate-email", h.ValidateEmail)
		authRoutes.POST("/validate-mobile", h.ValidateMobile)
	}
	adminRoutes := r.Group("/api/auth")
	adminRoutes.Use(middleware.RequireAdmin(st))
	{
		adminRoutes.GET("/superadmin/users", h.Users)
		adminRoutes.POST("/registered-businessOwner", h.RegisteredBusinessOwner)
		adminRoutes.POST("/superadmin/invite-business-owner", h.InviteBusinessOwner)
		adminRoutes.POST("/add-phlebotomist", h.AddPhlebotomist)
		adminRoutes.GET("/list-phlebotomists/:businessOwnerId", h.ListPhlebotomists)
		adminRoutes.DELETE("/remove-phlebotomist/:businessOwnerId/:phlebotomistId", h.RemovePhlebotomist)
	}
	serviceRoutes := r.Group("/api/services")
	serviceRoutes.Use(middleware.RequireToken())
	{
		serviceRoutes.POST("", h.CreateService)
		serviceRoutes.GET("", h.ListServices)
	}

	return &testEnv{store: st, mailer: mailer, sms: sms, router: r}
}

// seedAdmin stores a super admin and returns a token for them. The hash
// uses bcrypt's minimum cost to keep tests fast.
func (e *testEnv) seedAdmin(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &models.SuperAdmin{
		ID:       primitive.NewObjectID(),
		Email:    "admin@example.com",
		Password: string(hash),
	}
	e.store.admins[admin.Email] = admin

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email)
	require.NoError(t, err)
	return token
}

func (e *testEnv) seedOwner(t *testing.T, email, companyEmail string) *models.BusinessOwner {
	t.Helper()
	owner := &models.BusinessOwner{
		ID:            primitive.NewObjectID(),
		FirstName:     "Asha",
		LastName:      "Nair",
		CompanyName:   "Nair Diagnostics",
		CompanyEmail:  companyEmail,
		Email:         email,
		Phlebotomists: []models.Phlebotomist{},
	}
	e.store.owners[owner.ID] = owner
	return owner
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
