// Package interactive implements the line-oriented store portals: role
// selection, the manager portal, and the customer portal.
package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/passaudit/passaudit/pkg/defaults"
	"github.com/passaudit/passaudit/pkg/output/writers"
	"github.com/passaudit/passaudit/pkg/store"
	"github.com/passaudit/passaudit/pkg/ui"
)

// Config carries the file paths and manager credentials for a session.
// Zero values fall back to the package defaults.
type Config struct {
	DataFile  string
	UsersFile string
	AdminUser string
	AdminPass string
}

// Session is one interactive store run. Input and output are injected
// so the loop can be driven from tests as well as a terminal.
type Session struct {
	cfg     Config
	in      *bufio.Reader
	out     io.Writer
	inv     *store.Inventory
	history *store.History

	// ReadPassword reads the manager password. Defaults to a plain
	// line read; the CLI swaps in the no-echo terminal prompt.
	ReadPassword func(r *bufio.Reader, prompt string) (string, error)
}

// NewSession loads the inventory and history databases and returns a
// session ready to Run.
func NewSession(cfg Config, in io.Reader, out io.Writer) (*Session, error) {
	if cfg.DataFile == "" {
		cfg.DataFile = defaults.InventoryFile
	}
	if cfg.UsersFile == "" {
		cfg.UsersFile = defaults.HistoryFile
	}
	if cfg.AdminUser == "" {
		cfg.AdminUser = defaults.ManagerUser
	}
	if cfg.AdminPass == "" {
		cfg.AdminPass = defaults.ManagerPass
	}

	inv, err := store.LoadInventory(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	s := &Session{
		cfg:     cfg,
		in:      bufio.NewReader(in),
		out:     out,
		inv:     inv,
		history: store.LoadHistory(cfg.UsersFile),
	}
	s.ReadPassword = func(r *bufio.Reader, prompt string) (string, error) {
		return s.promptLine(prompt)
	}
	return s, nil
}

// Run drives the role selection loop until the user quits or input
// ends.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "  type \"manager\", \"customer\" or \"quit\".")

	for {
		role, err := s.promptLine("  > ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(role) {
		case "manager", "m":
			if err := s.managerLoop(); err != nil {
				return err
			}
		case "customer", "c":
			if err := s.customerLoop(); err != nil {
				return err
			}
		case "quit", "q", "exit":
			return nil
		case "":
		default:
			fmt.Fprintf(s.out, "  [!] Unknown role: %s\n", role)
		}
	}
}

// promptLine prints prompt and reads one line, trimmed.
func (s *Session) promptLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", io.EOF
	}
	return strings.TrimSpace(line), nil
}

// login gives the manager three attempts before giving up.
func (s *Session) login() bool {
	for attempt := 0; attempt < 3; attempt++ {
		user, err := s.promptLine("  Username: ")
		if err != nil {
			return false
		}
		pass, err := s.ReadPassword(s.in, "  Password: ")
		if err != nil {
			return false
		}
		if user == s.cfg.AdminUser && pass == s.cfg.AdminPass {
			return true
		}
		fmt.Fprintln(s.out, "  [!] Wrong credentials")
	}
	return false
}

func (s *Session) managerLoop() error {
	if !s.login() {
		fmt.Fprintln(s.out, "  [!] Access denied")
		return nil
	}
	fmt.Fprintln(s.out, "  [+] Manager portal. Type \"help\" for commands.")

	for {
		line, err := s.promptLine("  manager> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch strings.ToLower(args[0]) {
		case "help", "?":
			s.printManagerHelp()
		case "add":
			s.addProduct()
		case "list":
			ui.FprintProductListing(s.out, s.inv)
		case "save":
			if err := s.inv.Save(s.cfg.DataFile); err != nil {
				fmt.Fprintf(s.out, "  [!] %v\n", err)
			} else {
				fmt.Fprintf(s.out, "  [+] Saved %d products to %s\n", s.inv.Len(), s.cfg.DataFile)
			}
		case "reload":
			inv, err := store.LoadInventory(s.cfg.DataFile)
			if err != nil {
				fmt.Fprintf(s.out, "  [!] %v\n", err)
				continue
			}
			s.inv = inv
			fmt.Fprintf(s.out, "  [+] Reloaded %d products\n", s.inv.Len())
		case "back", "exit", "quit":
			return nil
		default:
			fmt.Fprintf(s.out, "  [!] Unknown command: %s (type 'help' for commands)\n", args[0])
		}
	}
}

func (s *Session) printManagerHelp() {
	fmt.Fprint(s.out, `
  available commands:
    add      - add a product, or restock an existing one
    list     - show the catalog
    save     - write the catalog to disk
    reload   - discard unsaved changes and reload from disk
    back     - return to role selection
    help     - show this help
`)
}

// addProduct prompts for the product fields. Adding an existing name
// restocks it and updates the price.
func (s *Session) addProduct() {
	name, err := s.promptLine("  Product name: ")
	if err != nil {
		return
	}
	priceRaw, err := s.promptLine("  Price: ")
	if err != nil {
		return
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		fmt.Fprintln(s.out, "  [!] Invalid price")
		return
	}
	stockRaw, err := s.promptLine("  Stock: ")
	if err != nil {
		return
	}
	stock, err := strconv.Atoi(stockRaw)
	if err != nil {
		fmt.Fprintln(s.out, "  [!] Invalid stock value")
		return
	}
	category, err := s.promptLine("  Category (blank for " + defaults.DefaultCategory + "): ")
	if err != nil {
		return
	}

	p, err := s.inv.Add(name, price, stock, category)
	if err != nil {
		fmt.Fprintf(s.out, "  [!] %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "  [+] %s\n", p)
}

func (s *Session) customerLoop() error {
	name, err := s.promptLine("  Your name (blank for guest): ")
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if name == "" {
		name = defaults.GuestUser
	}

	cart := store.NewCart()
	fmt.Fprintf(s.out, "  [+] Welcome, %s. Type \"help\" for commands.\n", name)

	// Unsold reservations go back on the shelf when the customer
	// leaves without checking out.
	defer func() {
		for _, it := range cart.Items() {
			cart.Remove(it.Product.Name)
		}
	}()

	for {
		line, err := s.promptLine("  store> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch strings.ToLower(args[0]) {
		case "help", "?":
			s.printCustomerHelp()
		case "list":
			ui.FprintProductListing(s.out, s.inv)
		case "add":
			s.addToCart(cart, args[1:])
		case "remove":
			if len(args) < 2 {
				fmt.Fprintln(s.out, "  [!] Usage: remove <product>")
				continue
			}
			if err := cart.Remove(strings.Join(args[1:], " ")); err != nil {
				fmt.Fprintf(s.out, "  [!] %v\n", err)
			} else {
				fmt.Fprintln(s.out, "  [+] Removed")
			}
		case "cart":
			ui.FprintCart(s.out, cart)
		case "checkout":
			s.checkout(name, cart)
		case "history":
			ui.FprintOrderHistory(s.out, name, s.history.Orders(name))
		case "back", "exit", "quit":
			return nil
		default:
			fmt.Fprintf(s.out, "  [!] Unknown command: %s (type 'help' for commands)\n", args[0])
		}
	}
}

func (s *Session) printCustomerHelp() {
	fmt.Fprint(s.out, `
  available commands:
    list                 - show the catalog
    add <product> <qty>  - put items in your cart
    remove <product>     - put items back
    cart                 - show your cart
    checkout             - pay and print a receipt
    history              - show your past orders
    back                 - return to role selection
    help                 - show this help
`)
}

// addToCart parses "add <name...> <qty>". A missing quantity defaults
// to one so "add coffee" works.
func (s *Session) addToCart(cart *store.Cart, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "  [!] Usage: add <product> <qty>")
		return
	}

	quantity := 1
	name := strings.Join(args, " ")
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
			quantity = n
			name = strings.Join(args[:len(args)-1], " ")
		}
	}

	p := s.inv.Find(name)
	if p == nil {
		fmt.Fprintf(s.out, "  [!] No such product: %s\n", name)
		return
	}
	if err := cart.Add(p, quantity); err != nil {
		fmt.Fprintf(s.out, "  [!] %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "  [+] %s x%d in cart\n", p.Name, quantity)
}

// checkout records the order, saves the reduced stock, and prints a
// receipt. The cart is cleared without restoring stock.
func (s *Session) checkout(name string, cart *store.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(s.out, "  [!] Your cart is empty")
		return
	}

	answer, err := s.promptLine(fmt.Sprintf("  Pay %s%.2f? (y/n): ", defaults.CurrencySymbol, cart.Total()))
	if err != nil || !strings.HasPrefix(strings.ToLower(answer), "y") {
		fmt.Fprintln(s.out, "  [~] Checkout cancelled")
		return
	}

	order, err := s.history.Record(name, cart.Items(), cart.Total())
	if err != nil {
		fmt.Fprintf(s.out, "  [!] %v\n", err)
		return
	}
	if err := s.inv.Save(s.cfg.DataFile); err != nil {
		fmt.Fprintf(s.out, "  [!] %v\n", err)
		return
	}
	cart.Clear()

	if err := writers.RenderReceipt(s.out, name, order); err != nil {
		fmt.Fprintf(s.out, "  [!] %v\n", err)
	}
}
