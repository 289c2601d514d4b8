package wallet

import (
	"maps"
	"slices"
)

// WalletCodes is the fixed set of base currencies shown in the wallet.
var WalletCodes = []string{"USD", "EUR", "GBP", "JPY"}

type CodeFilter struct {
	allowedSet map[string]struct{} // read only copy
	allowedLst []string            // read only copy
}

func (f *CodeFilter) Allows(code string) bool {
	_, ok := f.allowedSet[code]
	return ok
}

func (f *CodeFilter) SupportedCodes() []string {
	return slices.Clone(f.allowedLst)
}

func NewCodeFilter(codes ...string) *CodeFilter {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		if c != "" {
			set[c] = struct{}{}
		}
	}
	lst := slices.Collect(maps.Keys(set))
	slices.Sort(lst)

	return &CodeFilter{allowedSet: set, allowedLst: lst}
}

func NewWalletFilter() *CodeFilter { return NewCodeFilter(WalletCodes...) }
