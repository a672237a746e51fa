package usecase

import (
	"context"
	"errors"
	"testing"

	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase/interfaces"
	mock_interfaces "hvac_registry/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReferenceListStore_Refresh(t *testing.T) {
	t.Run("both lists ordered by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIReferenceStore(ctrl)
		store.EXPECT().ListOptions(gomock.Any(), entities.ReferenceBrands).
			Return([]entities.ReferenceOption{{ID: 2, Name: "Carrier"}, {ID: 1, Name: "Daikin"}}, nil)
		store.EXPECT().ListOptions(gomock.Any(), entities.ReferenceLocations).
			Return([]entities.ReferenceOption{{ID: 1, Name: "Sala 5"}}, nil)

		s := NewReferenceListStore(store, nil, "")
		require.NoError(t, s.Refresh(context.Background()))

		assert.True(t, s.Loaded())
		assert.Equal(t, []entities.ReferenceOption{{ID: 1, Name: "Daikin"}, {ID: 2, Name: "Carrier"}}, s.Brands())
		assert.Len(t, s.Locations(), 1)
	})

	t.Run("failure on second list keeps both caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, store := loadedOptions(t, ctrl)
		store.EXPECT().ListOptions(gomock.Any(), entities.ReferenceBrands).Return([]entities.ReferenceOption{}, nil)
		store.EXPECT().ListOptions(gomock.Any(), entities.ReferenceLocations).Return(nil, errors.New("down"))

		err := s.Refresh(context.Background())
		require.ErrorIs(t, err, ErrRemoteOperation)
		assert.Equal(t, testBrands, s.Brands())
		assert.Equal(t, testLocations, s.Locations())
	})
}

func TestReferenceListStore_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := loadedOptions(t, ctrl)

	b, ok := s.FindBrand("  daikin ")
	require.True(t, ok)
	assert.Equal(t, "Daikin", b.Name)

	_, ok = s.FindLocation("Garagem")
	assert.False(t, ok)

	l, ok := s.FindByID(entities.ReferenceLocations, 2)
	require.True(t, ok)
	assert.Equal(t, "Telhado", l.Name)
}

func TestReferenceListStore_Add(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		s := NewReferenceListStore(nil, nil, ReconcileMixed)
		_, _, err := s.AddBrand(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrInvalidOptionName)
	})

	t.Run("case-insensitive duplicate makes no remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, _ := loadedOptions(t, ctrl)

		got, created, err := s.AddBrand(context.Background(), "DAIKIN")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, entities.ReferenceOption{ID: 1, Name: "Daikin"}, got)
		assert.Len(t, s.Brands(), 2)
	})

	t.Run("insert then refetch both lists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, store := loadedOptions(t, ctrl)

		gomock.InOrder(
			store.EXPECT().InsertOption(gomock.Any(), entities.ReferenceLocations, "Garagem").Return(int64(4), nil),
			store.EXPECT().ListOptions(gomock.Any(), entities.ReferenceBrands).Return(cloneOptions(testBrands), nil),
			store.EXPECT().ListOptions(gomock.Any(), entities.ReferenceLocations).
				Return(append(cloneOptions(testLocations), entities.ReferenceOption{ID: 4, Name: "Garagem"}), nil),
		)

		got, created, err := s.AddLocation(context.Background(), " Garagem ")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, entities.ReferenceOption{ID: 4, Name: "Garagem"}, got)
		assert.Len(t, s.Locations(), 4)
	})

	t.Run("remote failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, store := loadedOptions(t, ctrl)
		store.EXPECT().InsertOption(gomock.Any(), entities.ReferenceBrands, "LG").Return(int64(0), errors.New("403"))

		_, created, err := s.AddBrand(context.Background(), "LG")
		assert.False(t, created)
		require.ErrorIs(t, err, ErrRemoteOperation)
		assert.Len(t, s.Brands(), 2)
	})

	t.Run("conflict resolved by refetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, store := loadedOptions(t, ctrl)
		withLG := append(cloneOptions(testBrands), entities.ReferenceOption{ID: 9, Name: "LG"})

		store.EXPECT().InsertOption(gomock.Any(), entities.ReferenceBrands, "lg").Return(int64(0), interfaces.ErrStoreConflict)
		store.EXPECT().ListOptions(gomock.Any(), entities.ReferenceBrands).Return(withLG, nil)
		store.EXPECT().ListOptions(gomock.Any(), entities.ReferenceLocations).Return(cloneOptions(testLocations), nil)

		got, created, err := s.AddBrand(context.Background(), "lg")
		require.NoError(t, err)
		assert.False(t, created, "another session inserted it")
		assert.Equal(t, int64(9), got.ID)
		assert.Equal(t, "LG", got.Name)
	})
}

func TestReferenceListStore_Remove(t *testing.T) {
	t.Run("filters locally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, store := loadedOptions(t, ctrl)
		store.EXPECT().DeleteOption(gomock.Any(), entities.ReferenceBrands, int64(2)).Return(nil)

		require.NoError(t, s.RemoveBrand(context.Background(), 2))
		assert.Equal(t, []entities.ReferenceOption{{ID: 1, Name: "Daikin"}}, s.Brands())
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, store := loadedOptions(t, ctrl)
		store.EXPECT().DeleteOption(gomock.Any(), entities.ReferenceLocations, int64(42)).Return(interfaces.ErrStoreNotFound)

		assert.ErrorIs(t, s.RemoveLocation(context.Background(), 42), ErrOptionNotFound)
	})

	t.Run("remote failure keeps option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s, store := loadedOptions(t, ctrl)
		store.EXPECT().DeleteOption(gomock.Any(), entities.ReferenceLocations, int64(1)).Return(errors.New("boom"))

		require.ErrorIs(t, s.RemoveLocation(context.Background(), 1), ErrRemoteOperation)
		assert.Len(t, s.Locations(), 3)
	})
}
