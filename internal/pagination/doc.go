// Package pagination provides page math shared by the interactive list view and
// the non-interactive list command.
//
// This package contains:
//   - Params: page/page-size pair with validation and offset calculation
//   - Page: the contiguous slice of a sorted set shown on one page
//   - Meta: page counts and previous/next availability for a result set
//   - Window: the bounded set of page-number buttons rendered around the current page
//
// All functions are total: out-of-range pages produce empty pages, never errors.
package pagination
