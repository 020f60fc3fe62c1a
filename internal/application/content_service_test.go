package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
)

func TestPageFilter(t *testing.T) {
	tests := []struct {
		page, limit int
		want        entity.ClinicFilter
	}{
		{0, 0, entity.ClinicFilter{Skip: 0, Limit: 10}},
		{1, 10, entity.ClinicFilter{Skip: 0, Limit: 10}},
		{3, 10, entity.ClinicFilter{Skip: 20, Limit: 10}},
		{2, 5000, entity.ClinicFilter{Skip: 1000, Limit: 1000}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageFilter(tt.page, tt.limit, ""))
	}
}

func TestClinicService(t *testing.T) {
	f := &fakeClinics{}
	svc := NewClinicService(f, nil)
	ctx := context.Background()

	page, err := svc.List(ctx, entity.Actor{Role: entity.RoleViewer}, 2, 10, " Kenya ")
	require.NoError(t, err)
	assert.Equal(t, entity.ClinicFilter{Skip: 10, Limit: 10, Country: "Kenya"}, f.filter)
	assert.Equal(t, 2, page.Page)
	assert.True(t, page.HasNext)

	_, err = svc.Create(ctx, entity.Actor{Role: entity.RoleViewer}, entity.ClinicInput{ClinicName: "x"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.Create(ctx, entity.Actor{Role: entity.RoleEditor}, entity.ClinicInput{
		ClinicName: "  Lea Toto  ", Phone: " +254711000000\n", SourceCountry: " Kenya", GoogleLink: "https://maps.google.com/?q=lea ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ClinicInput{
		ClinicName: "Lea Toto", Phone: "+254711000000", SourceCountry: "Kenya", GoogleLink: "https://maps.google.com/?q=lea",
	}, f.created)

	require.NoError(t, svc.Delete(ctx, entity.Actor{Role: entity.RoleSuperAdmin}, 7))
	assert.EqualValues(t, 7, f.deleted)
}

func TestQuizService_CreateRenumbers(t *testing.T) {
	f := &fakeQuizzes{}
	svc := NewQuizService(f, nil)
	in := entity.NewQuiz{
		Title: "  Consent basics ",
		Questions: []entity.NewQuestion{
			{Text: " First ", Order: 7, Options: []entity.QuizOption{{Text: "a", IsCorrect: true}, {Text: "b"}}},
			{Text: "Second", Order: 7, Options: []entity.QuizOption{{Text: "c"}, {Text: "d", IsCorrect: true}}},
		},
	}

	err := svc.Create(context.Background(), entity.Actor{Role: entity.RoleViewer}, in)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Nil(t, f.created)

	require.NoError(t, svc.Create(context.Background(), entity.Actor{Role: entity.RoleEditor}, in))
	require.NotNil(t, f.created)
	assert.Equal(t, "Consent basics", f.created.Title)
	assert.Equal(t, 1, f.created.Questions[0].Order)
	assert.Equal(t, 2, f.created.Questions[1].Order)
	assert.Equal(t, "First", f.created.Questions[0].Text)
}

func TestAdminService_Gates(t *testing.T) {
	f := &fakeAdmins{}
	svc := NewAdminService(f, nil)
	ctx := context.Background()

	for _, role := range []entity.Role{entity.RoleUnauthenticated, entity.RoleViewer, entity.RoleEditor} {
		_, err := svc.Create(ctx, entity.Actor{Role: role}, entity.NewAdmin{Username: "x"})
		assert.ErrorIs(t, err, ErrPermissionDenied, role)
		assert.ErrorIs(t, svc.Delete(ctx, entity.Actor{Role: role}, 1), ErrPermissionDenied, role)
	}

	a, err := svc.Create(ctx, entity.Actor{Role: entity.RoleSuperAdmin}, entity.NewAdmin{Username: "x", Role: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, "editor", a.Role)

	require.NoError(t, svc.Delete(ctx, entity.Actor{Role: entity.RoleSuperAdmin}, 4))
	assert.Equal(t, []int64{4}, f.deleted)
}

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(&fakeAuth{tok: &entity.SessionToken{AccessToken: "abc", TokenType: "bearer"}}, nil)
	tok, err := svc.Login(context.Background(), " amina ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	svc = NewAuthService(&fakeAuth{err: &repo.StatusError{Status: 401, Detail: "Incorrect admin username or password"}}, nil)
	_, err = svc.Login(context.Background(), "amina", "bad")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "Incorrect admin username or password", repo.DetailOr(err, ""))

	svc = NewAuthService(&fakeAuth{tok: &entity.SessionToken{}}, nil)
	_, err = svc.Login(context.Background(), "amina", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
