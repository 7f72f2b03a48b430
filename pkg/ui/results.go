package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/passaudit/passaudit/pkg/defaults"
	"github.com/passaudit/passaudit/pkg/policy"
	"github.com/passaudit/passaudit/pkg/store"
)

var titleCaser = cases.Title(language.English)

// PrintAuditResult prints the full evaluation of one credential pair:
// score, level badge, and the recorded failure reasons in check order.
func PrintAuditResult(result policy.Result) {
	fmt.Printf("%s %s\n",
		StatLabelStyle.Render("Password Strength:"),
		ScoreStyle(result.Score).Render(fmt.Sprintf("%d/%d", result.Score, result.MaxScore)),
	)
	fmt.Printf("%s %s\n",
		StatLabelStyle.Render("Level:"),
		LevelStyle(result.Level.String()).Render(result.Level.String()),
	)

	if len(result.Failures) == 0 {
		fmt.Println(StatValueStyle.Render("All checks passed."))
		return
	}
	fmt.Println(StatLabelStyle.Render("Failed Checks:"))
	for _, reason := range result.Failures {
		fmt.Printf("%s %s\n", ReasonStyle.Render("-"), reason)
	}
}

// FormatAuditLine renders one batch-mode result as a single bracketed
// line: [medium] [4/7] alice (3 failed checks)
func FormatAuditLine(username string, result policy.Result) string {
	var parts []string
	parts = append(parts, BracketStyle.Render("[")+
		LevelStyle(result.Level.String()).Render(strings.ToLower(result.Level.String()))+
		BracketStyle.Render("]"))
	parts = append(parts, BracketStyle.Render("[")+
		ScoreStyle(result.Score).Render(fmt.Sprintf("%d/%d", result.Score, result.MaxScore))+
		BracketStyle.Render("]"))
	parts = append(parts, StatValueStyle.Render(username))

	n := len(result.Failures)
	switch n {
	case 0:
		parts = append(parts, HelpStyle.Render("(all checks passed)"))
	case 1:
		parts = append(parts, HelpStyle.Render("(1 failed check)"))
	default:
		parts = append(parts, HelpStyle.Render(fmt.Sprintf("(%d failed checks)", n)))
	}
	return strings.Join(parts, " ")
}

// FprintProductListing writes the catalog grouped by category with a
// continuous item index, the way the customer portal displays it.
func FprintProductListing(w io.Writer, inv *store.Inventory) {
	if inv.Len() == 0 {
		fmt.Fprintln(w, HelpStyle.Render("No products yet."))
		return
	}
	fmt.Fprintln(w, StatLabelStyle.Render("Available products:"))
	idx := 1
	order, groups := inv.ByCategory()
	for _, category := range order {
		fmt.Fprintf(w, "  %s\n", CategoryStyle.Render(titleCaser.String(category)))
		for _, p := range groups[category] {
			fmt.Fprintf(w, "   [%d] %s\n", idx, p)
			idx++
		}
	}
}

// PrintProductListing writes the catalog to stdout.
func PrintProductListing(inv *store.Inventory) {
	FprintProductListing(os.Stdout, inv)
}

// FprintCart writes the cart contents and the running total.
func FprintCart(w io.Writer, cart *store.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(w, HelpStyle.Render("Your cart is empty."))
		return
	}
	fmt.Fprintln(w, StatLabelStyle.Render("Your cart:"))
	for _, it := range cart.Items() {
		fmt.Fprintf(w, " - %s\n", it)
	}
	fmt.Fprintf(w, "\n%s %s\n",
		StatLabelStyle.Render("Total:"),
		PriceStyle.Render(fmt.Sprintf("%s%.2f", defaults.CurrencySymbol, cart.Total())),
	)
}

// PrintCart writes the cart to stdout.
func PrintCart(cart *store.Cart) {
	FprintCart(os.Stdout, cart)
}

// FprintOrderHistory writes a user's recorded purchases, oldest first.
func FprintOrderHistory(w io.Writer, username string, orders []store.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, HelpStyle.Render("No purchase history yet."))
		return
	}
	fmt.Fprintf(w, "%s\n", StatLabelStyle.Render("Purchase history for "+username+":"))
	for i, order := range orders {
		fmt.Fprintf(w, "  %d. %s\n", i+1, HelpStyle.Render(order.PlacedAt.Format(time.DateTime)))
		for _, it := range order.Items {
			fmt.Fprintf(w, "     - %s x%d - %s%.2f\n",
				it.Name, it.Quantity, defaults.CurrencySymbol, it.Price*float64(it.Quantity))
		}
		fmt.Fprintf(w, "     %s %s%.2f\n", StatLabelStyle.Render("Total:"), defaults.CurrencySymbol, order.Total)
	}
}

// PrintOrderHistory writes a user's purchase history to stdout.
func PrintOrderHistory(username string, orders []store.Order) {
	FprintOrderHistory(os.Stdout, username, orders)
}
