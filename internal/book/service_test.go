package book

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Save(t *testing.T) {
	ctx := context.Background()
	input := Book{Title: "Novo livro", Author: "Genin", ISBN: "777"}

	t.Run("creates when isbn is free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo, nil)

		saved := input
		saved.ID = 1
		gomock.InOrder(
			mockRepo.EXPECT().ExistsByISBN(gomock.Any(), "777").Return(false, nil),
			mockRepo.EXPECT().Create(gomock.Any(), input).Return(saved, nil),
		)

		got, err := service.Save(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "Novo livro", got.Title)
		assert.Equal(t, "Genin", got.Author)
		assert.Equal(t, "777", got.ISBN)
	})

	t.Run("duplicate isbn never reaches create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo, nil)

		mockRepo.EXPECT().ExistsByISBN(gomock.Any(), "777").Return(true, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.Save(ctx, input)
		require.Error(t, err)

		var be *BusinessError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, "Isbn já cadastrado.", be.Message)
	})

	t.Run("store failure propagates unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo, nil)

		mockRepo.EXPECT().ExistsByISBN(gomock.Any(), "777").Return(false, context.DeadlineExceeded)

		_, err := service.Save(ctx, input)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, nil)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(999)).Return(Book{}, false, nil)

	_, found, err := service.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, nil)
	ctx := context.Background()

	b := Book{ID: 1, Title: "New Title", Author: "New Author", ISBN: "777"}
	mockRepo.EXPECT().Update(gomock.Any(), b).Return(b, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	updated, err := service.Update(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, b, updated)

	require.NoError(t, service.Delete(ctx, b))
}
