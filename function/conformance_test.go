package function_test

import (
	"testing"

	"xdao.co/varbin/function"
	"xdao.co/varbin/function/functest"
)

func TestDefaultCatalog_Conformance(t *testing.T) {
	functest.RunConformance(t, func(t *testing.T) functest.Invoker {
		return function.Default()
	})
}

func TestBuiltinsCatalog_Conformance(t *testing.T) {
	functest.RunConformance(t, func(t *testing.T) functest.Invoker {
		c := function.NewCatalog()
		for _, s := range function.Builtins() {
			c.MustRegister(s)
		}
		return c
	})
}
