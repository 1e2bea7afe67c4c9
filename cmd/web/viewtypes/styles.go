package viewtypes

// ============================================================================
// SHARED CSS CLASS CONSTANTS
// Class names used across template files. Keep in sync with
// static/dist/main.css.
// ============================================================================

// PageHeading is the main h1 heading style for top-level pages.
var PageHeading = "board-heading"

// SearchInput is the showtimes search field.
var SearchInput = "board-search"

// BoardTable is the showtimes table container.
var BoardTable = "board-table"
