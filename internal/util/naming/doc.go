// Package naming generates identifiers for provisioned cloud resources.
package naming
