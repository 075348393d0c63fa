package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/AntonStoeckl/library-lending-go/core"
	"github.com/AntonStoeckl/library-lending-go/features/command/lendbook"
	"github.com/AntonStoeckl/library-lending-go/features/command/registerbook"
	"github.com/AntonStoeckl/library-lending-go/features/command/registerpatron"
	"github.com/AntonStoeckl/library-lending-go/features/command/returnbook"
	"github.com/AntonStoeckl/library-lending-go/features/query/activeloans"
	"github.com/AntonStoeckl/library-lending-go/features/query/availablebooks"
	"github.com/AntonStoeckl/library-lending-go/features/query/booksonloan"
	"github.com/AntonStoeckl/library-lending-go/features/query/registeredpatrons"
	"github.com/AntonStoeckl/library-lending-go/features/query/searchbooks"
	"github.com/AntonStoeckl/library-lending-go/library"
	"github.com/AntonStoeckl/library-lending-go/shell"
)

// ErrMissingHandler is returned by New when a handler in Handlers is nil.
var ErrMissingHandler = errors.New("console handler is missing")

var errInputClosed = errors.New("input closed")

// ConsistencyChecker verifies that books and patrons agree.
type ConsistencyChecker interface {
	CheckConsistency() error
}

// Handlers are the use cases the menu dispatches to.
type Handlers struct {
	RegisterBook      shell.CommandHandler[registerbook.Command]
	RegisterPatron    shell.CommandHandler[registerpatron.Command]
	LendBook          shell.CommandHandler[lendbook.Command]
	ReturnBook        shell.CommandHandler[returnbook.Command]
	SearchBooks       shell.QueryHandler[searchbooks.Query, searchbooks.SearchResult]
	AvailableBooks    shell.QueryHandler[availablebooks.Query, availablebooks.AvailableBooks]
	BooksOnLoan       shell.QueryHandler[booksonloan.Query, booksonloan.BooksOnLoan]
	RegisteredPatrons shell.QueryHandler[registeredpatrons.Query, registeredpatrons.RegisteredPatrons]
	ActiveLoans       shell.QueryHandler[activeloans.Query, activeloans.ActiveLoans]
	Consistency       ConsistencyChecker
}

func (h Handlers) validate() error {
	present := []bool{
		h.RegisterBook != nil,
		h.RegisterPatron != nil,
		h.LendBook != nil,
		h.ReturnBook != nil,
		h.SearchBooks != nil,
		h.AvailableBooks != nil,
		h.BooksOnLoan != nil,
		h.RegisteredPatrons != nil,
		h.ActiveLoans != nil,
		h.Consistency != nil,
	}

	for _, ok := range present {
		if !ok {
			return ErrMissingHandler
		}
	}

	return nil
}

// Console runs the menu loop.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	handlers Handlers
	now      func() time.Time
	color    bool
	styles   styles
}

// Option configures a Console.
type Option func(*Console)

// WithClock sets the time source for command timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Console) {
		c.now = now
	}
}

// WithColor enables or disables colored output. Color is on by default and only used on terminals.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.color = enabled
	}
}

// New creates a Console reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, handlers Handlers, opts ...Option) (*Console, error) {
	if err := handlers.validate(); err != nil {
		return nil, err
	}

	c := &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		handlers: handlers,
		now:      time.Now,
		color:    true,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.styles = newStyles(out, c.color)

	return c, nil
}

// Run shows the main menu until the librarian exits or the input ends.
// It returns an error only when reading the input fails or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.showMainMenu()

		choice, err := c.ask("Select an option (0-7): ")
		if err != nil {
			return c.finish(err)
		}

		switch choice {
		case "1":
			err = c.registerBook(ctx)
		case "2":
			err = c.registerPatron(ctx)
		case "3":
			err = c.lendBook(ctx)
		case "4":
			err = c.returnBook(ctx)
		case "5":
			err = c.searchBooks(ctx)
		case "6":
			err = c.reports(ctx)
		case "7":
			c.checkConsistency()
		case "0":
			c.println("Goodbye!")
			return nil
		default:
			c.println(c.styles.failure.Render("Invalid option, choose 0-7."))
		}

		if err != nil {
			return c.finish(err)
		}
	}
}

func (c *Console) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		c.println("")
		c.println("Goodbye!")
		return nil
	}

	return err
}

func (c *Console) showMainMenu() {
	c.println("")
	c.println(c.styles.title.Render("========== LIBRARY MANAGEMENT =========="))
	c.println("1. Register book")
	c.println("2. Register patron")
	c.println("3. Lend book")
	c.println("4. Return book")
	c.println("5. Search books")
	c.println("6. Reports")
	c.println("7. Consistency check")
	c.println("0. Exit")
	c.println(c.styles.title.Render("========================================"))
}

func (c *Console) registerBook(ctx context.Context) error {
	c.section("Register book")

	answers, err := c.askAll("Title: ", "Author: ", "Year: ", "Catalog key (ISBN): ", "Total copies: ")
	if err != nil {
		return err
	}

	year, yearErr := parseNumber(answers[2])
	totalCopies, copiesErr := parseNumber(answers[4])
	if yearErr != nil || copiesErr != nil {
		c.println(c.styles.failure.Render(invalidNumberMessage))
		return nil
	}

	command := registerbook.BuildCommand(answers[3], answers[0], answers[1], year, totalCopies, c.now())
	_, err = c.handlers.RegisterBook.Handle(ctx, command)

	return c.report(err, "Book registered.")
}

func (c *Console) registerPatron(ctx context.Context) error {
	c.section("Register patron")

	answers, err := c.askAll("Name: ", "Patron ID: ", "Contact (phone or e-mail): ")
	if err != nil {
		return err
	}

	command := registerpatron.BuildCommand(answers[1], answers[0], answers[2], c.now())
	_, err = c.handlers.RegisterPatron.Handle(ctx, command)

	return c.report(err, "Patron registered.")
}

func (c *Console) lendBook(ctx context.Context) error {
	c.section("Lend book")

	answers, err := c.askAll("Patron ID: ", "Catalog key (ISBN): ")
	if err != nil {
		return err
	}

	_, err = c.handlers.LendBook.Handle(ctx, lendbook.BuildCommand(answers[0], answers[1], c.now()))

	return c.report(err, "Book lent.")
}

func (c *Console) returnBook(ctx context.Context) error {
	c.section("Return book")

	answers, err := c.askAll("Patron ID: ", "Catalog key (ISBN): ")
	if err != nil {
		return err
	}

	_, err = c.handlers.ReturnBook.Handle(ctx, returnbook.BuildCommand(answers[0], answers[1], c.now()))

	return c.report(err, "Book returned.")
}

func (c *Console) searchBooks(ctx context.Context) error {
	c.section("Search books")
	c.println("1. By title")
	c.println("2. By author")
	c.println("3. By year")

	choice, err := c.ask("Select (1-3): ")
	if err != nil {
		return err
	}

	var field library.SearchField
	var prompt string

	switch choice {
	case "1":
		field, prompt = library.SearchByTitle, "Title or part of it: "
	case "2":
		field, prompt = library.SearchByAuthor, "Author or part of the name: "
	case "3":
		field, prompt = library.SearchByYear, "Year: "
	default:
		c.println(c.styles.failure.Render("Invalid search option."))
		return nil
	}

	text, err := c.ask(prompt)
	if err != nil {
		return err
	}

	result, err := c.handlers.SearchBooks.Handle(ctx, searchbooks.BuildQuery(field, text))
	if err != nil {
		return c.report(err, "")
	}

	if result.Count == 0 {
		c.println("No books match.")
		return nil
	}

	c.println(fmt.Sprintf("Found %d book(s):", result.Count))
	for _, book := range result.Books {
		c.println("- " + FormatBook(book))
	}

	return nil
}

func (c *Console) reports(ctx context.Context) error {
	for {
		c.section("Reports")
		c.println("1. Available books")
		c.println("2. Books on loan")
		c.println("3. Registered patrons")
		c.println("4. Active loans")
		c.println("0. Back to main menu")

		choice, err := c.ask("Select (0-4): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.reportAvailable(ctx)
		case "2":
			err = c.reportOnLoan(ctx)
		case "3":
			err = c.reportPatrons(ctx)
		case "4":
			err = c.reportActiveLoans(ctx)
		case "0":
			return nil
		default:
			c.println(c.styles.failure.Render("Invalid option, choose 0-4."))
		}

		if err != nil {
			return err
		}
	}
}

func (c *Console) reportAvailable(ctx context.Context) error {
	result, err := c.handlers.AvailableBooks.Handle(ctx, availablebooks.BuildQuery())
	if err != nil {
		return c.report(err, "")
	}

	c.println(c.styles.muted.Render(fmt.Sprintf("Total available books: %d", result.Count)))
	for _, book := range result.Books {
		c.println("- " + FormatBook(book))
	}

	return nil
}

func (c *Console) reportOnLoan(ctx context.Context) error {
	result, err := c.handlers.BooksOnLoan.Handle(ctx, booksonloan.BuildQuery())
	if err != nil {
		return c.report(err, "")
	}

	c.println(c.styles.muted.Render(fmt.Sprintf("Total books with copies on loan: %d", result.Count)))
	for _, info := range result.Books {
		c.println("- " + FormatBookOnLoan(info.Book, info.CopiesLent))
	}

	return nil
}

func (c *Console) reportPatrons(ctx context.Context) error {
	result, err := c.handlers.RegisteredPatrons.Handle(ctx, registeredpatrons.BuildQuery())
	if err != nil {
		return c.report(err, "")
	}

	c.println(c.styles.muted.Render(fmt.Sprintf("Total registered patrons: %d", result.Count)))
	for _, info := range result.Patrons {
		c.println("- " + FormatPatron(info.Patron))
	}

	return nil
}

func (c *Console) reportActiveLoans(ctx context.Context) error {
	result, err := c.handlers.ActiveLoans.Handle(ctx, activeloans.BuildQuery())
	if err != nil {
		return c.report(err, "")
	}

	c.println(c.styles.muted.Render(fmt.Sprintf("Total active loans: %d", result.Count)))
	for _, loan := range result.Loans {
		c.println("- " + FormatActiveLoan(loan.PatronName, loan.BookTitle, loan.BookKey, loan.LentAt))
	}

	return nil
}

func (c *Console) checkConsistency() {
	c.section("Consistency check")

	err := c.handlers.Consistency.CheckConsistency()
	if err == nil {
		c.println(c.styles.success.Render("Books and patrons are consistent."))
		return
	}

	for _, line := range strings.Split(err.Error(), "\n") {
		c.println(c.styles.fault.Render(line))
	}
}

// report prints the outcome of a handler call. Context errors end the loop, everything else
// goes back to the menu.
func (c *Console) report(err error, success string) error {
	switch {
	case err == nil:
		c.println(c.styles.success.Render(success))
		return nil
	case shell.IsCancellationError(err), shell.IsTimeoutError(err):
		return err
	case core.IsConsistencyFault(err):
		c.println(c.styles.fault.Render(ErrorMessage(err)))
		return nil
	default:
		c.println(c.styles.failure.Render(ErrorMessage(err)))
		return nil
	}
}

func (c *Console) section(name string) {
	c.println("")
	c.println(c.styles.title.Render("--- " + name + " ---"))
}

func (c *Console) ask(prompt string) (string, error) {
	c.print(prompt)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}

		return "", errInputClosed
	}

	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) askAll(prompts ...string) ([]string, error) {
	answers := make([]string, 0, len(prompts))

	for _, prompt := range prompts {
		answer, err := c.ask(prompt)
		if err != nil {
			return nil, err
		}

		answers = append(answers, answer)
	}

	return answers, nil
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	_, _ = io.WriteString(c.out, s+"\n")
}

func parseNumber(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
