// Package locale adapts the active POSIX locale to the interfaces the
// reconciliation engine consumes.
//
// It determines the message locale from the environment, looks up
// translated directory labels in gettext catalogs, converts names to the
// configured filename encoding and provides locale-aware string collation.
package locale
