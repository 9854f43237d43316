package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/medagenda/clinica-api/internal/application/auth"
	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/domain"
	"github.com/medagenda/clinica-api/internal/domain/entity"
)

const orgID = "org-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users     map[string]*entity.User // por email
	lookupErr error                   // inyectable: simula la DB caída en el pre-chequeo
	created   []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.Email] = &cp
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(context.Context, string) (*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmailAndOrganization(_ context.Context, email, org string) (*entity.User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	u, ok := r.users[email]
	if !ok || u.OrganizationID != org {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) ListByOrganization(context.Context, string) ([]*entity.User, error) {
	return nil, nil
}

type fakeOrgRepo struct {
	orgs map[string]*entity.Organization
}

func (r *fakeOrgRepo) Create(context.Context, *entity.Organization) error { return nil }
func (r *fakeOrgRepo) GetByID(_ context.Context, id string) (*entity.Organization, error) {
	org, ok := r.orgs[id]
	if !ok {
		return nil, nil
	}
	return org, nil
}
func (r *fakeOrgRepo) List(context.Context, int, int) ([]*entity.Organization, error) {
	return nil, nil
}
func (r *fakeOrgRepo) NextPatientSeq(context.Context, string) (int64, error) { return 0, nil }
func (r *fakeOrgRepo) NextSaleSeq(context.Context, string) (int64, error)    { return 0, nil }

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	orgRepo := &fakeOrgRepo{orgs: map[string]*entity.Organization{
		orgID: {ID: orgID, Name: "Clínica Sonrisa", Status: "active"},
	}}
	cfg := auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "clinica-api"}
	return auth.NewAuthUseCase(userRepo, orgRepo, cfg), userRepo
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:          "Ana@Clinica.co",
		Password:       "s3creta",
		Name:           "Ana Díaz",
		OrganizationID: orgID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_CreaUsuarioConPasswordHasheado(t *testing.T) {
	uc, userRepo := newUseCase()

	out, err := uc.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "ana@clinica.co", out.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, entity.RoleRecepcion, out.Role, "sin rol explícito se asume recepcion")

	require.Len(t, userRepo.created, 1)
	stored := userRepo.created[0]
	assert.NotEqual(t, "s3creta", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3creta")))
}

func TestRegisterUser_EmailExistente_RetornaError(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.RegisterUser(context.Background(), registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_FalloDeConsulta_PropagaElError(t *testing.T) {
	uc, userRepo := newUseCase()
	errConexion := errors.New("conexión perdida")
	userRepo.lookupErr = errConexion

	_, err := uc.RegisterUser(context.Background(), registerRequest())
	assert.ErrorIs(t, err, errConexion,
		"un fallo al consultar el email no debe tratarse como email libre")
	assert.Empty(t, userRepo.created, "no debe crearse ningún usuario")
}

func TestRegisterUser_OrganizacionInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newUseCase()

	in := registerRequest()
	in.OrganizationID = "org-fantasma"
	_, err := uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidasRetornaToken(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@clinica.co", Password: "s3creta",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@clinica.co", out.User.Email)
}

func TestLogin_PasswordIncorrecta_RetornaUnauthorized(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@clinica.co", Password: "otra",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
