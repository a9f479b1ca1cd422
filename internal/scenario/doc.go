// Package scenario loads economic scenarios from YAML or TOML files.
//
// A scenario bundles the inputs the econ command works on: an interest
// block, a list of projects with an optional budget and MARR, depreciable
// assets and a mortgage. Load picks the decoder by file extension and
// validates the result before returning it. The conversion helpers turn each
// block into the library value it describes.
package scenario
