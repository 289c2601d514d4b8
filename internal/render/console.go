// Package render draws the wallet screen as plain text.
package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"walletfx/internal/domain"
)

const (
	title        = "My Wallet"
	balanceLabel = "Current balance"
	actionRow    = "[ Buy ]  Sell"
	loadingLine  = "Loading..."
)

// Console writes vm to w. Buy and Sell are shown but do nothing.
func Console(w io.Writer, vm domain.ViewModel) error {
	bw := bufio.NewWriter(w)

	if vm.Loading {
		fmt.Fprintln(bw, loadingLine)
		return bw.Flush()
	}

	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, balanceLabel)
	fmt.Fprintf(bw, "$ %s\n", vm.FormattedBalance())
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, actionRow)

	if vm.Error != nil {
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "Could not load rates (%s error)\n", vm.Error.Kind)
	}

	for _, c := range vm.Currencies {
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "%-4s %s\n", c.Code, c.Name)
		fmt.Fprintf(bw, "     %s %s\n", c.CodeIn, bidAmount(c))
	}

	return bw.Flush()
}

func bidAmount(r domain.RateRecord) string {
	v, err := r.BidValue()
	if err != nil {
		v = math.NaN()
	}
	return domain.FormatAmount(v)
}
