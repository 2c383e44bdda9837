package core

import "strings"

// AssetType is the semantic type of an archived asset
type AssetType int

const (
	AssetBox         AssetType = 0
	AssetObject      AssetType = 1
	AssetMap         AssetType = 2
	AssetHeightMap   AssetType = 3
	AssetPath        AssetType = 4
	AssetAnimation   AssetType = 5
	AssetCarProperty AssetType = 6
	AssetModel       AssetType = 7
	AssetTexture     AssetType = 10
	AssetUnknown     AssetType = -1
)

// wireUnknown is the on-disk code for AssetUnknown. Pack never emits it.
const wireUnknown byte = 255

// Whole file names that are classified before any extension rule applies.
// Matching is case-sensitive.
var specialNames = map[string]AssetType{
	"path.dat":        AssetPath,
	"sky.obj":         AssetObject,
	"heightmap.hmp":   AssetHeightMap,
	"animate.dat":     AssetAnimation,
	"carproperty.dat": AssetCarProperty,
}

var extensionTypes = map[string]AssetType{
	"box": AssetBox,
	"map": AssetMap,
	"png": AssetTexture,
	"jpg": AssetTexture,
}

// Classify maps a base file name to its asset type
func Classify(fileName string) AssetType {
	if t, ok := specialNames[fileName]; ok {
		return t
	}
	lower := strings.ToLower(fileName)
	i := strings.LastIndexByte(lower, '.')
	if i < 0 {
		return AssetUnknown
	}
	if t, ok := extensionTypes[lower[i+1:]]; ok {
		return t
	}
	return AssetUnknown
}

// IsTexture reports whether assets of this type are stored ahead of all others
func (t AssetType) IsTexture() bool {
	return t == AssetTexture
}

// Known reports whether t has a wire code other than the unknown marker
func (t AssetType) Known() bool {
	switch t {
	case AssetBox, AssetObject, AssetMap, AssetHeightMap, AssetPath,
		AssetAnimation, AssetCarProperty, AssetModel, AssetTexture:
		return true
	}
	return false
}

// WireCode returns the single byte written to the archive for t
func (t AssetType) WireCode() byte {
	if !t.Known() {
		return wireUnknown
	}
	return byte(t)
}

// AssetTypeFromWire maps an archive type byte back to an AssetType.
// Bytes written by newer tools decode to AssetUnknown instead of failing.
func AssetTypeFromWire(code byte) AssetType {
	t := AssetType(code)
	if code == wireUnknown || !t.Known() {
		return AssetUnknown
	}
	return t
}

// String returns the display name of the asset type
func (t AssetType) String() string {
	switch t {
	case AssetBox:
		return "Box"
	case AssetObject:
		return "Object"
	case AssetMap:
		return "Map"
	case AssetHeightMap:
		return "Height Map"
	case AssetPath:
		return "Path"
	case AssetAnimation:
		return "Animation"
	case AssetCarProperty:
		return "Car Property"
	case AssetModel:
		return "Model"
	case AssetTexture:
		return "Texture"
	}
	return "Unknown"
}
