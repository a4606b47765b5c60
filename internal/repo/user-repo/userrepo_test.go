package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/DKoroteev/linkmart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	selectQuery := `SELECT id, login, password_hash, role FROM users WHERE login = $1`

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User exists",
			login: "adv",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role"}).
					AddRow(1, "adv", "hashed", "advertiser")
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs("adv").
					WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Login: "adv", PasswordHash: "hashed", Role: "advertiser"},
		},
		{
			name:  "User does not exist",
			login: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "adv",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs("adv").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	insertQuery := `INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id`

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "User created",
			user: &domain.User{Login: "pub", PasswordHash: "hashed", Role: "publisher"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(2)
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("pub", "hashed", "publisher").
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			user: &domain.User{Login: "pub", PasswordHash: "hashed", Role: "publisher"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("pub", "hashed", "publisher").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 2, user.ID)
			}
		})
	}
}
