package splice_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// TestSpliceFile is the entry point for the Ginkgo specs of the aggregator
// file splice.
func TestSpliceFile(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Aggregator Splice Suite")
}
