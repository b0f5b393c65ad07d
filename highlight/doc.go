// Package highlight turns plain code text into class-tagged markup.
//
// Rendering is backed by Chroma. The result of Render is either inert text
// (plain text, unknown grammar, engine failure) or HTML whose text content is
// exactly the input text.
package highlight
