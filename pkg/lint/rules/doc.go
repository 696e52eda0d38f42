// Package rules provides the built-in semantic rules for semlint.
//
// # Catalog
//
// Rules are evaluated in the order below. Within a severity, diagnostics are
// reported in that same order, then in each rule's own iteration order.
//
//   - Essential structure (error):
//
//   - SEM001: header-element - Page should contain a <header>
//
//   - SEM002: footer-element - Page should contain a <footer>
//
//   - SEM003: nav-element - Page should contain a <nav>
//
//   - Secondary structure (info):
//
//   - SEM004: section-element - Consider using <section>
//
//   - SEM005: article-element - Consider using <article>
//
//   - SEM006: aside-element - Consider using <aside>
//
//   - Layout and identifiers (error):
//
//   - SEM007: no-empty-paragraphs - Empty <p> used for spacing, once per paragraph
//
//   - SEM008: semantic-identifiers - id/class named after an HTML5 element
//
//   - Forms and tables (info):
//
//   - SEM009: new-input-types - <input type="text"> may have a better type
//
//   - SEM010: tableless-design - Tables only for tabular data
//
//   - Deprecated constructs (error):
//
//   - SEM011: no-deprecated-tags - Deprecated or presentational elements
//
//   - SEM012: no-deprecated-attributes - Inline styles
//
//   - Summary (info):
//
//   - SEM013: semantic-success - Emitted only when nothing else fired
//
// # Tag Notion
//
// The structure rules consider an element present when the document has the
// tag itself, an element with that id, or an element with that class.
//
// # Registration
//
// Rules are registered with lint.DefaultRegistry via RegisterAll when the
// package is imported. NewRegistry builds an independent catalog.
package rules
