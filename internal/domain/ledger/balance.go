package ledger

import "github.com/shopspring/decimal"

// Balance returns total debts minus total payments for the client.
// Sums use exact decimal arithmetic; empty collections sum to zero.
// The balance is always derived from the attached debts and payments,
// never stored.
func (c *Client) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, d := range c.Debts {
		balance = balance.Add(d.Amount)
	}
	for _, p := range c.Payments {
		balance = balance.Sub(p.Amount)
	}
	return balance
}

// ClientBalance pairs a client with its derived balance for reporting
type ClientBalance struct {
	ClientID uint
	Name     string
	Balance  decimal.Decimal
}

// Balances computes the balance of every client in order, feeding the
// balance-by-client chart.
func Balances(clients []Client) []ClientBalance {
	result := make([]ClientBalance, len(clients))
	for i, c := range clients {
		result[i] = ClientBalance{
			ClientID: c.ID,
			Name:     c.Name,
			Balance:  c.Balance(),
		}
	}
	return result
}

// DailyCashTotal computes the drawer reconciliation total for one day:
// the sum of cash-method payments minus the sum of withdrawals. Payments
// made via any other method are excluded from the total.
func DailyCashTotal(payments []Payment, withdrawals []CashMovement) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.IsCash() {
			total = total.Add(p.Amount)
		}
	}
	for _, w := range withdrawals {
		total = total.Sub(w.Amount)
	}
	return total
}
