// Package alternatives serves the product alternatives lookup.
//
// A user uploads a CSV or XLSX file of requested products. The file is joined with
// a freshly fetched copy of the reference inventory for the chosen variant, and the
// result can be narrowed by opcion (and bodega, for fomag) before download.
//
// Every request is one session, identified by its RayID. Nothing is kept between
// requests: the export endpoint receives the upload again.
//
// # HTTP Endpoints
//
//   - GET /alternatives/variants : Lists the variants and their column sets.
//   - GET /alternatives/template : Downloads (or redirects to) the upload template.
//   - POST /alternatives/:variant : Reconciles an upload; returns rows and facet values.
//   - POST /alternatives/:variant/export : Returns the filtered rows as alternativas_filtradas.xlsx.
//
// # Statuses
//
//   - ok: alternatives found and a selection applied.
//   - no_alternatives: the join is empty.
//   - nothing_selected: no facet value was chosen; the unfiltered rows are shown, never exported.
//   - invalid_upload (422): the upload lacks required columns.
//   - reference_invalid (502): the reference inventory lacks required columns or the sheet.
//
// A 503 with retry=true means the reference inventory could not be fetched.
package alternatives
