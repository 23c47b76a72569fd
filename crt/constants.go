package crt

// OpenAddressing - Open Addressing Collision Resolution Technique using Linear Probing and tombstones
const OpenAddressing int = 1

// LinearProbing - Alias for OpenAddressing, the only probing sequence the open addressing table uses
const LinearProbing int = OpenAddressing

// SeparateChaining - Separate Chaining Collision Resolution Technique using one linked list per bucket
const SeparateChaining int = 2

// Name - Returns a human readable name of the given collision resolution technique
func Name(crtType int) string {
	switch crtType {
	case OpenAddressing:
		return "OpenAddressing"
	case SeparateChaining:
		return "SeparateChaining"
	default:
		return "Unknown"
	}
}
