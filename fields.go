package tide

import "github.com/zoobzio/capitan"

// Field keys for store events.
var (
	// KeyKind is the discriminant of the action being processed.
	KeyKind = capitan.NewStringKey("kind")

	// KeyError is the error message when an effect fails.
	KeyError = capitan.NewStringKey("error")

	// KeySubscribers is the number of subscribers in a notification snapshot.
	KeySubscribers = capitan.NewIntKey("subscribers")
)
