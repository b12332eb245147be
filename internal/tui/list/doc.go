// Package listview provides the option picker used for the sort and region
// dropdowns of the country list.
//
// The picker keeps a highlighted item, scrolls when the option list is taller than
// the space it is given, and supports up/down, home/end and vim-style j/k
// navigation. Choosing and dismissing are left to the parent model.
package listview
