package testutils

import (
	"context"
	"reflect"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/golang/mock/gomock"

	tokentypes "github.com/skip-mev/escrow-auction/x/token/types"
)

type MockTokenKeeper struct {
	ctrl     *gomock.Controller
	recorder *MockTokenKeeperMockRecorder
}

type MockTokenKeeperMockRecorder struct {
	mock *MockTokenKeeper
}

func NewMockTokenKeeper(ctrl *gomock.Controller) *MockTokenKeeper {
	mock := &MockTokenKeeper{ctrl: ctrl}
	mock.recorder = &MockTokenKeeperMockRecorder{mock}
	return mock
}

func (m *MockTokenKeeper) EXPECT() *MockTokenKeeperMockRecorder {
	return m.recorder
}

func (m *MockTokenKeeper) GetHolder(ctx context.Context, addr sdk.AccAddress) (tokentypes.Holder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHolder", ctx, addr)
	ret0, _ := ret[0].(tokentypes.Holder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTokenKeeperMockRecorder) GetHolder(ctx, addr interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHolder", reflect.TypeOf((*MockTokenKeeper)(nil).GetHolder), ctx, addr)
}

func (m *MockTokenKeeper) Transfer(ctx context.Context, from, to sdk.AccAddress, signer tokentypes.Signer, amount math.Int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transfer", ctx, from, to, signer, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTokenKeeperMockRecorder) Transfer(ctx, from, to, signer, amount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transfer", reflect.TypeOf((*MockTokenKeeper)(nil).Transfer), ctx, from, to, signer, amount)
}
