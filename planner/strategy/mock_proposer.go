package strategy

import (
	"github.com/stretchr/testify/mock"

	"weekplanner/planner"
)

// MockProposer implements the Proposer interface for testing
type MockProposer struct {
	mock.Mock
}

func (m *MockProposer) FindUserByID(id string) (*planner.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planner.User), args.Error(1)
}

func (m *MockProposer) ProposeSlot(actingUserID string, event *planner.Event, inviteeIDs []string) (bool, error) {
	args := m.Called(actingUserID, event, inviteeIDs)
	return args.Bool(0), args.Error(1)
}
