// Package inventory parses findAll character dumps
// (addons/findAll/data/<character>.lua).
//
// A dump is a list of bags, each opened by a header line and followed by
// item-ID/quantity lines:
//
//	["wardrobe2"] = {
//	    ["16480"] = 1,
//	    ["20583"] = 0,
//	},
//
// Only stacks with a positive quantity count. The result maps each item ID
// to the bags holding it, in the order they appear in the dump.
package inventory
