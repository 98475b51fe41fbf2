package dda_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDDA(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Integration Rule Suite")
}
