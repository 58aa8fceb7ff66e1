package domain

// Hook identifies one operation of the standardized build-backend contract.
// The set is closed; front-ends dispatch hooks by name.
type Hook string

const (
	HookGetRequiresForBuildWheel    Hook = "get-requires-for-build-wheel"
	HookGetRequiresForBuildSdist    Hook = "get-requires-for-build-sdist"
	HookGetRequiresForBuildEditable Hook = "get-requires-for-build-editable"

	HookPrepareMetadataForBuildWheel    Hook = "prepare-metadata-for-build-wheel"
	HookPrepareMetadataForBuildEditable Hook = "prepare-metadata-for-build-editable"

	HookBuildWheel    Hook = "build-wheel"
	HookBuildSdist    Hook = "build-sdist"
	HookBuildEditable Hook = "build-editable"
)

// String returns the hook name as used on the wire.
func (h Hook) String() string { return string(h) }
