package types

// Translator is the localization capability supplied by the embedding
// application. The store uses it when surfacing server-pushed messages;
// it never owns catalogs itself.
type Translator interface {
	// Gettext returns the translation for msgid, or msgid itself when no
	// translation exists.
	Gettext(msgid string) string

	// Ngettext returns the singular or plural translation for n.
	Ngettext(singular, plural string, n int) string

	// Interpolate substitutes named placeholders of the form %(name)s in
	// format with values from args.
	Interpolate(format string, args map[string]string) string
}

// Notifier surfaces server-pushed messages to the user. The rendering
// layer typically implements this with a toast or alert component.
type Notifier interface {
	// Notify displays a message. Called synchronously from
	// ReceiveEnvelope; implementations should return quickly.
	Notify(msg Message)
}
