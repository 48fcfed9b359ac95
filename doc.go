// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

/*
Package tex unwraps legacy TEX texture containers (Titan Quest engine) into
plain DDS that strict readers accept.

A TEX file is a short framing header ("TEX" plus a version byte and the
payload length) followed by a DDS header whose magic reads "DDSR" instead of
"DDS ". Many of those headers also declare an uncompressed RGB layout with
zeroed channel masks or a 32-bit layout without the alpha flag, which
standards-compliant readers reject or misinterpret.

Normalize strips the framing, restores the DDS magic, fills in canonical
A8R8G8B8 channel masks and sets the texture caps bit. It never touches pixel
data. Decode, EncodePNG, EncodeDDS and ConvertToEDDS hand the result to the
BCn codec for practical workflows: preview as PNG, re-encode from PNG, or
repackage as Enfusion EDDS.
*/
package tex
