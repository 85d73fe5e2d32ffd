package selector

import "github.com/armdeck/armdeck/internal/arch"

// policy is the fallback preference order for one (service, class) pair.
// Candidates are probed in order; ScanFilter, when set, triggers an
// open-ended inventory scan after the fixed candidates; Default is
// selected when nothing is present locally.
type policy struct {
	Candidates []string
	ScanFilter []string
	Default    string
}

// policyKey keys the policy table.
type policyKey struct {
	Service Service
	Class   arch.Class
}

// policies is the fixed selection policy. New services or classes extend
// by adding rows, not control flow.
var policies = map[policyKey]policy{
	{ServiceDatabase, arch.ClassARM}: {
		Candidates: []string{"arm64v8/mysql:8", "mysql:8"},
		Default:    "arm64v8/mysql:8",
	},
	{ServiceDatabase, arch.ClassOther}: {
		Candidates: []string{"mysql:8"},
		Default:    "mysql:8",
	},
	{ServiceRuntime, arch.ClassARM}: {
		Candidates: []string{
			"arm64v8/openjdk:17-jdk",
			"arm64v8/eclipse-temurin:17-jdk",
			"eclipse-temurin:17-jdk",
		},
		ScanFilter: []string{"openjdk", "17", "jdk"},
		Default:    "eclipse-temurin:17-jdk",
	},
	{ServiceRuntime, arch.ClassOther}: {
		Candidates: []string{"eclipse-temurin:17-jdk", "openjdk:17-jdk"},
		Default:    "eclipse-temurin:17-jdk",
	},
}

// policyFor returns the policy row for a (service, class) pair.
func policyFor(svc Service, class arch.Class) policy {
	return policies[policyKey{svc, class}]
}
