package app

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace-grid/internal/grid"
	"workspace-grid/internal/wm"
	"workspace-grid/internal/wm/mocks"
	"workspace-grid/pkg/logger"
)

type renderCall struct {
	focused  int
	occupied grid.Occupied
}

type fakeRenderer struct {
	calls []renderCall
	err   error
}

func (f *fakeRenderer) Render(focused int, occupied grid.Occupied) error {
	f.calls = append(f.calls, renderCall{focused: focused, occupied: occupied})
	return f.err
}

func workspaces(focused int, nums ...int) wm.WorkspaceSet {
	set := make(wm.WorkspaceSet, 0, len(nums))
	for _, n := range nums {
		set = append(set, wm.Workspace{Num: n, Focused: n == focused})
	}
	return set
}

func newTestGrid(t *testing.T) (*WorkspaceGrid, *mocks.MockClient, *fakeRenderer) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Name().Return("i3").AnyTimes()
	r := &fakeRenderer{}
	return NewWorkspaceGrid(client, r, logger.Nop()), client, r
}

func TestRunSwitchAbsolute(t *testing.T) {
	g, client, r := newTestGrid(t)

	gomock.InOrder(
		client.EXPECT().ListWorkspaces().Return(workspaces(2, 2), nil),
		client.EXPECT().SendCommand("workspace number 5").Return(nil),
		client.EXPECT().ListWorkspaces().Return(workspaces(5, 2, 5), nil),
	)

	require.NoError(t, g.Run("switch", "5"))
	assert.Equal(t, []renderCall{{focused: 5, occupied: grid.Occupied{2, 5}}}, r.calls)
}

func TestRunSwitchWithoutFollow(t *testing.T) {
	g, client, r := newTestGrid(t)

	client.EXPECT().ListWorkspaces().Return(workspaces(2, 2), nil).Times(2)

	require.NoError(t, g.Run("switch", "3"))
	assert.Equal(t, []renderCall{{focused: 2, occupied: grid.Occupied{2}}}, r.calls)
}

func TestRunMoveDirection(t *testing.T) {
	g, client, r := newTestGrid(t)

	gomock.InOrder(
		client.EXPECT().ListWorkspaces().Return(workspaces(4, 1, 4), nil),
		client.EXPECT().SendCommand("move container to workspace number 7").Return(nil),
		client.EXPECT().SendCommand("workspace number 7").Return(nil),
		client.EXPECT().ListWorkspaces().Return(workspaces(7, 1, 4, 7), nil),
	)

	require.NoError(t, g.Run("move", "down"))
	assert.Equal(t, []renderCall{{focused: 7, occupied: grid.Occupied{1, 4, 7}}}, r.calls)
}

func TestRunNextCycles(t *testing.T) {
	g, client, r := newTestGrid(t)

	gomock.InOrder(
		client.EXPECT().ListWorkspaces().Return(workspaces(9, 2, 5, 9), nil),
		client.EXPECT().SendCommand("workspace number 2").Return(nil),
		client.EXPECT().ListWorkspaces().Return(workspaces(2, 2, 5, 9), nil),
	)

	require.NoError(t, g.Run("switch", "next"))
	require.Len(t, r.calls, 1)
	assert.Equal(t, 2, r.calls[0].focused)
}

func TestRunUnknownDirectionIsNoop(t *testing.T) {
	g, client, r := newTestGrid(t)

	gomock.InOrder(
		client.EXPECT().ListWorkspaces().Return(workspaces(5, 5), nil),
		// Planning "foo" keeps 5, which is a follow target.
		client.EXPECT().SendCommand("workspace number 5").Return(nil),
		client.EXPECT().ListWorkspaces().Return(workspaces(5, 5), nil),
	)

	require.NoError(t, g.Run("switch", "foo"))
	assert.Len(t, r.calls, 1)
}

func TestRunDisplayOnlyQueriesOnce(t *testing.T) {
	g, client, r := newTestGrid(t)

	client.EXPECT().ListWorkspaces().Return(workspaces(1, 1, 7), nil).Times(1)

	require.NoError(t, g.Run("display", "ignored"))
	assert.Equal(t, []renderCall{{focused: 1, occupied: grid.Occupied{1, 7}}}, r.calls)
}

func TestRunUnknownMode(t *testing.T) {
	g, _, r := newTestGrid(t)

	err := g.Run("jump", "3")
	assert.ErrorIs(t, err, ErrUsage)
	assert.Empty(t, r.calls)
}

func TestRunQueryFailureSkipsRender(t *testing.T) {
	g, client, r := newTestGrid(t)

	client.EXPECT().ListWorkspaces().Return(nil, errors.Join(wm.ErrIPC, errors.New("exit status 1")))

	err := g.Run("switch", "up")
	assert.ErrorIs(t, err, wm.ErrIPC)
	assert.Empty(t, r.calls)
}

func TestRunNextPassesUnnumberedThrough(t *testing.T) {
	g, client, r := newTestGrid(t)

	// i3 reports named workspaces without a number as -1.
	set := wm.WorkspaceSet{{Num: 3, Focused: true}, {Num: -1}, {Num: 6}}
	gomock.InOrder(
		client.EXPECT().ListWorkspaces().Return(set, nil),
		client.EXPECT().SendCommand("workspace number -1").Return(wm.ErrIPC),
		client.EXPECT().ListWorkspaces().Return(set, nil),
	)

	require.NoError(t, g.Run("switch", "next"))
	assert.Equal(t, []renderCall{{focused: 3, occupied: grid.Occupied{3, -1, 6}}}, r.calls)
}

func TestRunNoFocusedWorkspace(t *testing.T) {
	g, client, r := newTestGrid(t)

	client.EXPECT().ListWorkspaces().Return(workspaces(0, 1, 2), nil)

	err := g.Run("switch", "left")
	assert.ErrorIs(t, err, grid.ErrNotFound)
	assert.Empty(t, r.calls)
}

func TestRunCommandFailureStillRenders(t *testing.T) {
	g, client, r := newTestGrid(t)

	gomock.InOrder(
		client.EXPECT().ListWorkspaces().Return(workspaces(1, 1), nil),
		client.EXPECT().SendCommand("workspace number 2").Return(wm.ErrIPC),
		client.EXPECT().ListWorkspaces().Return(workspaces(1, 1), nil),
	)

	require.NoError(t, g.Run("switch", "right"))
	assert.Equal(t, []renderCall{{focused: 1, occupied: grid.Occupied{1}}}, r.calls)
}

func TestRunRenderError(t *testing.T) {
	g, client, r := newTestGrid(t)
	r.err = errors.New("no display")

	client.EXPECT().ListWorkspaces().Return(workspaces(1, 1), nil)

	assert.EqualError(t, g.Run("display", "x"), "no display")
}
