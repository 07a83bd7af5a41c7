package book

// stylesheet is embedded in the book; tuned for e-ink readers and reading
// apps.
const stylesheet = `
body {
    font-family: Georgia, "Times New Roman", serif;
    line-height: 1.6;
    margin: 1em;
    color: #1a1a1a;
}
h1 {
    font-size: 1.8em;
    margin-top: 1.5em;
    margin-bottom: 0.5em;
    page-break-before: always;
}
h2 {
    font-size: 1.4em;
    margin-top: 1.2em;
    margin-bottom: 0.4em;
}
h3 {
    font-size: 1.15em;
    margin-top: 1em;
    margin-bottom: 0.3em;
}
p {
    margin-bottom: 0.8em;
    text-align: justify;
}
a {
    color: #1d4ed8;
    text-decoration: underline;
}
code {
    font-family: "Courier New", Courier, monospace;
    font-size: 0.9em;
    background-color: #f3f4f6;
    padding: 0.1em 0.3em;
    border-radius: 3px;
}
pre {
    background-color: #f3f4f6;
    padding: 1em;
    overflow-x: auto;
    border-radius: 4px;
    font-size: 0.85em;
    line-height: 1.4;
    margin: 1em 0;
}
pre code {
    background: none;
    padding: 0;
}
blockquote {
    border-left: 3px solid #d1d5db;
    margin-left: 0;
    padding-left: 1em;
    color: #4b5563;
    font-style: italic;
}
img {
    max-width: 100%;
    height: auto;
}
table {
    border-collapse: collapse;
    width: 100%;
    margin: 1em 0;
    font-size: 0.9em;
}
th, td {
    border: 1px solid #d1d5db;
    padding: 0.5em;
    text-align: left;
}
th {
    background-color: #f9fafb;
    font-weight: bold;
}
ul, ol {
    margin-bottom: 0.8em;
    padding-left: 1.5em;
}
li {
    margin-bottom: 0.3em;
}
hr {
    border: none;
    border-top: 1px solid #e5e7eb;
    margin: 2em 0;
}
.part-title {
    font-size: 2em;
    text-align: center;
    margin-top: 3em;
    margin-bottom: 1em;
    font-weight: bold;
}
.part-subtitle {
    text-align: center;
    color: #6b7280;
    font-size: 1.1em;
    margin-bottom: 2em;
}
.build-info {
    text-align: center;
    color: #9ca3af;
    font-size: 0.85em;
    margin-top: 2em;
}
`
