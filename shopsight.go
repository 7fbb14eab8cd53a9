// Package shopsight extracts structured business profiles from Shopify
// storefronts. It validates and classifies store URLs, fetches the public
// JSON feeds and key pages, parses them into catalog, policy, FAQ, social,
// and contact data, and assembles the result into a single StoreProfile.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, gemini/).
package shopsight
