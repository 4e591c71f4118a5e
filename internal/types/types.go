// README: Common identifier type shared across modules.
package types

// ID identifies sessions, conversations, and messages (UUID strings).
type ID string
