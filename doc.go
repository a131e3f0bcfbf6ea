// Package huffman implements a lossless byte-stream compressor built on a
// Huffman prefix code whose tree is shipped in the stream header.
//
// A compressed stream is laid out as follows, with no byte alignment between
// the parts:
//
//     32 bits   MagicTree, most significant bit first
//     variable  the code tree in preorder: an internal node is a 0 bit
//               followed by its left and right subtrees, a leaf is a 1 bit
//               followed by its 9-bit symbol
//     variable  the code of every input byte, then the code of EOF, then
//               zero bits up to the next byte boundary
//
// There is no length field.  The decoder stops when it reaches the EOF leaf.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
