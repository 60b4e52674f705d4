// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gamekeys_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/event"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/mocks"
)

func TestWithdraw(t *testing.T) {
	tl := setupTestLedger(t)
	tl.mustAddCreator(t, creator1)
	tl.mustRegister(t, creator1, "Snake", 5)
	_, _ = tl.BuyGame(user1, 1, wei(5))

	tl.transferrer.EXPECT().Transfer(creator1, wei(5)).Return(nil).Times(1)

	amount, err := tl.Withdraw(creator1)
	assert.Nil(t, err, "wrong Withdraw")
	assert.True(t, wei(5).Eq(amount), "wrong amount")
	assert.True(t, tl.GetCreatorBalance(creator1).IsZero(), "balance not reset")

	_, err = tl.Withdraw(creator1)
	assert.Equal(t, fault.EmptyBalance, err, "second withdraw")
	assert.Equal(t, "nothing to withdraw", err.Error(), "wrong message")
}

func TestWithdrawRequiresGameCreator(t *testing.T) {
	tl := setupTestLedger(t)

	for _, caller := range []account.Account{admin, deployer, user1} {
		_, err := tl.Withdraw(caller)
		assert.Equal(t, fault.Unauthorized, err, "withdraw by %s", caller)
	}
}

func TestWithdrawEmptyBalance(t *testing.T) {
	tl := setupTestLedger(t)
	tl.mustAddCreator(t, creator1)

	_, err := tl.Withdraw(creator1)
	assert.Equal(t, fault.EmptyBalance, err, "withdraw of nothing")
}

func TestWithdrawTransferFailureRestoresBalance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	retrying := false
	withdrawn := 0
	p := mocks.NewMockPublisher(ctl)
	p.EXPECT().Publish(gomock.Any()).AnyTimes().Do(func(r event.Record) {
		if event.GameBenefitsWithdrewName != r.Name {
			return
		}
		assert.True(t, retrying, "failed withdraw emitted event")
		withdrawn += 1
	})

	tl := setupTestLedgerWithPublisher(t, ctl, p)
	tl.mustAddCreator(t, creator1)
	tl.mustRegister(t, creator1, "Snake", 5)
	_, _ = tl.BuyGame(user1, 1, wei(5))

	tl.transferrer.EXPECT().Transfer(creator1, wei(5)).DoAndReturn(func(to account.Account, amount *uint256.Int) error {
		// the balance is already zero while the transfer runs
		assert.True(t, tl.GetCreatorBalance(creator1).IsZero(), "balance not zeroed before transfer")
		return errors.New("connection refused")
	}).Times(1)

	_, err := tl.Withdraw(creator1)
	assert.Equal(t, fault.TransferFailed, err, "wrong error")
	assert.True(t, wei(5).Eq(tl.GetCreatorBalance(creator1)), "balance not restored")

	assert.Equal(t, 0, withdrawn, "events from failed withdraw")

	// retry succeeds
	retrying = true
	tl.transferrer.EXPECT().Transfer(creator1, wei(5)).Return(nil).Times(1)
	amount, err := tl.Withdraw(creator1)
	assert.Nil(t, err, "retry failed")
	assert.True(t, wei(5).Eq(amount), "wrong amount")
	assert.Equal(t, 1, withdrawn, "withdraw events from retry")
}

func TestWithdrawReentrancy(t *testing.T) {
	tl := setupTestLedger(t)
	tl.mustAddCreator(t, creator1)
	tl.mustRegister(t, creator1, "Snake", 5)
	_, _ = tl.BuyGame(user1, 1, wei(5))

	tl.transferrer.EXPECT().Transfer(creator1, wei(5)).DoAndReturn(func(to account.Account, amount *uint256.Int) error {
		_, err := tl.Withdraw(creator1)
		assert.Equal(t, fault.EmptyBalance, err, "reentrant withdraw succeeded")
		return nil
	}).Times(1)

	amount, err := tl.Withdraw(creator1)
	assert.Nil(t, err, "wrong Withdraw")
	assert.True(t, wei(5).Eq(amount), "paid other than balance")
	assert.True(t, tl.GetCreatorBalance(creator1).IsZero(), "balance not reset")
}

func TestReentrantCallRollsBackWithOuterFailure(t *testing.T) {
	tl := setupTestLedger(t)
	tl.mustAddCreator(t, creator1)
	tl.mustRegister(t, creator1, "Snake", 5)
	_, _ = tl.BuyGame(user1, 1, wei(5))

	tl.transferrer.EXPECT().Transfer(creator1, wei(5)).DoAndReturn(func(to account.Account, amount *uint256.Int) error {
		// a nested purchase succeeds inside the open transaction
		token, err := tl.BuyGame(user2, 1, wei(5))
		assert.Nil(t, err, "nested BuyGame")
		assert.Equal(t, uint64(2), token, "wrong nested token")

		// a nested failure discards only its own writes
		_, err = tl.BuyGame(user2, 9, wei(5))
		assert.Equal(t, fault.ListingNotFound, err, "nested failure")
		assert.Equal(t, uint64(1), tl.BalanceOf(user2), "nested failure rolled back too much")

		return errors.New("rejected")
	}).Times(1)

	_, err := tl.Withdraw(creator1)
	assert.Equal(t, fault.TransferFailed, err, "wrong error")

	// everything inside the failed withdraw is undone
	assert.Equal(t, uint64(0), tl.BalanceOf(user2), "nested purchase survived")
	assert.Equal(t, uint64(1), tl.LicenseCount(), "nested token survived")
	assert.True(t, wei(5).Eq(tl.GetCreatorBalance(creator1)), "balance not restored")
}

func TestWithdrawTransferErrorIsWrapped(t *testing.T) {
	tl := setupTestLedger(t)
	tl.mustAddCreator(t, creator1)
	tl.mustRegister(t, creator1, "Snake", 5)
	_, _ = tl.BuyGame(user1, 1, wei(5))

	tl.transferrer.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(fault.NotAvailable).Times(1)

	_, err := tl.Withdraw(creator1)
	assert.True(t, fault.IsErrProcess(err), "wrong error class")
	assert.True(t, wei(5).Eq(tl.GetCreatorBalance(creator1)), "balance not restored")
}
