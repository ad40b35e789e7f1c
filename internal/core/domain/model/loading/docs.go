// Package loading contains the Loading aggregate root: the lifecycle state
// machine of a dock loading request and, for invoice-imported loadings, the
// product-line checklist reconciled against physical scans.
package loading
