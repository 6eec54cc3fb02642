//go:build unit

package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoomExtraUseCase_CreateOrUpdate_CreatesWhenPairIsNew(t *testing.T) {
	roomID := uuid.New()

	repo := new(roomExtraRepoMock)
	repo.On("FindByFlags", mock.Anything, true, false).
		Return(nil, infra.WrapRepoErr("room extra not found", nil, infra.KindNotFound))

	var created *room.Extra
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*room.Extra) }).
		Return(nil)

	uc := NewRoomExtraUseCase(repo)
	rm, err := uc.CreateOrUpdate(context.Background(), reqdto.CreateOrUpdateExtraRequest{
		HasInternet: true,
		RoomIDs:     []uuid.UUID{roomID},
	})

	require.NoError(t, err)
	assert.True(t, rm.HasInternet)
	assert.False(t, rm.HasTV)
	assert.Equal(t, []uuid.UUID{roomID}, rm.RoomIDs)
	require.NotNil(t, created)
	repo.AssertNotCalled(t, "ReplaceRooms")
}

func TestRoomExtraUseCase_CreateOrUpdate_UnionsExistingPair(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()
	existing, err := room.NewExtra(true, true, []uuid.UUID{roomA})
	require.NoError(t, err)

	repo := new(roomExtraRepoMock)
	repo.On("FindByFlags", mock.Anything, true, true).Return(existing, nil)

	var replaced *room.Extra
	repo.On("ReplaceRooms", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { replaced = args.Get(1).(*room.Extra) }).
		Return(nil)

	uc := NewRoomExtraUseCase(repo)

	// Re-sending an already attached room plus a new one yields the union.
	rm, err := uc.CreateOrUpdate(context.Background(), reqdto.CreateOrUpdateExtraRequest{
		HasInternet: true,
		HasTV:       true,
		RoomIDs:     []uuid.UUID{roomA, roomB},
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID(), rm.ID, "no second row for the same pair")
	assert.ElementsMatch(t, []uuid.UUID{roomA, roomB}, rm.RoomIDs)
	require.NotNil(t, replaced)
	repo.AssertNotCalled(t, "Create")
}

func TestRoomExtraUseCase_RemoveRoom(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()
	existing, err := room.NewExtra(false, true, []uuid.UUID{roomA, roomB})
	require.NoError(t, err)

	repo := new(roomExtraRepoMock)
	repo.On("FindByID", mock.Anything, existing.ID()).Return(existing, nil)
	repo.On("ReplaceRooms", mock.Anything, mock.Anything).Return(nil)

	uc := NewRoomExtraUseCase(repo)
	rm, err := uc.RemoveRoom(context.Background(), existing.ID(), roomA)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{roomB}, rm.RoomIDs)

	_, err = uc.RemoveRoom(context.Background(), existing.ID(), uuid.New())
	assert.ErrorIs(t, err, room.ErrRoomNotInSet)
}
