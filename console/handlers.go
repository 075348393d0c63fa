package console

import (
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

// HandlersFor creates the plain handlers of every use case on lib.
// A nil publisher disables domain events.
func HandlersFor(lib *library.Library, publisher shell.EventPublisher) Handlers {
	return Handlers{
		RegisterBook:      registerbook.NewCommandHandler(lib, registerbook.WithEventPublisher(publisher)),
		RegisterPatron:    registerpatron.NewCommandHandler(lib, registerpatron.WithEventPublisher(publisher)),
		LendBook:          lendbook.NewCommandHandler(lib, lendbook.WithEventPublisher(publisher)),
		ReturnBook:        returnbook.NewCommandHandler(lib, returnbook.WithEventPublisher(publisher)),
		SearchBooks:       searchbooks.NewQueryHandler(lib),
		AvailableBooks:    availablebooks.NewQueryHandler(lib),
		BooksOnLoan:       booksonloan.NewQueryHandler(lib),
		RegisteredPatrons: registeredpatrons.NewQueryHandler(lib),
		ActiveLoans:       activeloans.NewQueryHandler(lib),
		Consistency:       lib,
	}
}
