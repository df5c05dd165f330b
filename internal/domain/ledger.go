package domain

import "fmt"

// EarningCategory selects which sub-balance a ledger entry lands in
type EarningCategory string

const (
	CategoryBonus   EarningCategory = "bonus"
	CategoryDeposit EarningCategory = "deposit"
	CategoryWinning EarningCategory = "winning"

	// CategoryStake moves totalEarnings only. Game entry fees are not attributed to a sub-balance.
	CategoryStake EarningCategory = "stake"
)

// ApplyEarnings is the only path that writes balance fields. The amount is signed and the
// resulting sign is not checked; callers verify the balance before debiting.
func (u *User) ApplyEarnings(amount int64, category EarningCategory) {
	switch category {
	case CategoryBonus:
		u.BonusBalance += amount
	case CategoryDeposit:
		u.DepositBalance += amount
	case CategoryWinning:
		u.WinningBalance += amount
	case CategoryStake:
	default:
		panic(fmt.Sprintf("unknown earning category %q", category))
	}
	u.TotalEarnings += amount
}

// SubBalanceTotal sums the bonus, deposit and winning partitions
func (u *User) SubBalanceTotal() int64 {
	return u.BonusBalance + u.DepositBalance + u.WinningBalance
}

// LedgerDrift is totalEarnings minus the sub-balances. Only stake entries change it.
func (u *User) LedgerDrift() int64 {
	return u.TotalEarnings - u.SubBalanceTotal()
}

// WithdrawableBalance is the part of the winning balance still backed by totalEarnings.
// Stakes lower totalEarnings alone, so it can fall below the winning balance.
func (u *User) WithdrawableBalance() int64 {
	if u.TotalEarnings <= 0 {
		return 0
	}
	return min(u.WinningBalance, u.TotalEarnings)
}
