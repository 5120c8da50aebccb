package usecase

import (
	"context"
	"errors"
	"testing"

	"quote_relay/internal/domain/entities"
	mock_interfaces "quote_relay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteAccessUseCase_AuthorizeSend(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewQuoteAccessUseCase(nil)
		_, err := uc.AuthorizeSend(context.Background(), "   ", "U1")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("invalid subject", func(t *testing.T) {
		uc := NewQuoteAccessUseCase(nil)
		_, err := uc.AuthorizeSend(context.Background(), "Q1", " ")
		if !errors.Is(err, ErrInvalidSubject) {
			t.Fatalf("expected ErrInvalidSubject, got %v", err)
		}
	})

	t.Run("repository not configured", func(t *testing.T) {
		uc := NewQuoteAccessUseCase(nil)
		_, err := uc.AuthorizeSend(context.Background(), "Q1", "U1")
		if !errors.Is(err, ErrRepoUnavailable) {
			t.Fatalf("expected ErrRepoUnavailable, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteAccessUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.AuthorizeSend(context.Background(), "Q1", "U1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteAccessUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q404").Return(entities.Quote{}, nil)

		_, err := uc.AuthorizeSend(context.Background(), " Q404 ", "U1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	cases := []struct {
		name    string
		quote   entities.Quote
		subject string
		wantErr error
	}{
		{name: "createdBy matches", quote: entities.Quote{ID: "Q1", CreatedBy: "U1", Total: "250"}, subject: "U1"},
		{name: "createdBy matches after trim", quote: entities.Quote{ID: "Q1", CreatedBy: " U1 "}, subject: "U1 "},
		{name: "userId fallback matches", quote: entities.Quote{ID: "Q1", UserID: "U1"}, subject: "U1"},
		{name: "createdBy preferred over userId", quote: entities.Quote{ID: "Q1", CreatedBy: "U2", UserID: "U1"}, subject: "U1", wantErr: ErrQuoteForbidden},
		{name: "different subject", quote: entities.Quote{ID: "Q1", CreatedBy: "U1"}, subject: "U2", wantErr: ErrQuoteForbidden},
		{name: "case sensitive", quote: entities.Quote{ID: "Q1", CreatedBy: "u1"}, subject: "U1", wantErr: ErrQuoteForbidden},
		{name: "no creator", quote: entities.Quote{ID: "Q1"}, subject: "U1", wantErr: ErrQuoteForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := NewQuoteAccessUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), "Q1").Return(tc.quote, nil)

			q, err := uc.AuthorizeSend(context.Background(), "Q1", tc.subject)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.ID != "Q1" {
				t.Fatalf("expected quote Q1, got %+v", q)
			}
		})
	}
}
