package offsets

// DefaultSignatures locate the functions of the host executable the native
// core hooks for quick select: the window procedures of the search edit
// and of the result list. The patterns are the function prologues of the
// 64-bit 1.5 host builds, with stack frame sizes masked out.
var DefaultSignatures = []Signature{
	{
		Name:    "search_edit_proc",
		Pattern: "48 89 5C 24 ?? 48 89 74 24 ?? 57 48 83 EC ?? 41 8B F8 48 8B F2",
	},
	{
		Name:    "result_list_proc",
		Pattern: "40 55 53 56 57 41 54 41 56 41 57 48 8D AC 24 ?? ?? ?? ?? 48 81 EC",
	},
}
