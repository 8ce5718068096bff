// Package catalog holds the reference data a survey session works with:
// academic units, researchers and the ordered question list. It also
// defines where that data comes from (Source), how it is fetched (Loader)
// and how a fetched Document is decoded into the `{success, data}`
// envelope the endpoints serve. Loader implementations live under
// internal/catalog and are constructed through the root package.
package catalog
