/*
Package workbookapp is a command-line client for the Microsoft Graph workbook (Excel online) range API.

workbook-app-graph builds request descriptors for worksheet range operations and executes them against
the Graph REST host with an access token obtained via the OAuth2 authorization-code flow.

workbook-app-graph supports the following commands:

  - authorise, to run the authorization-code flow, cache the access token and fire a single range request
  - get, to retrieve the properties of a worksheet range
  - update, to write a CSV file to a worksheet range
  - insert, to insert empty cells in place of a range
  - clear, to clear the values and/or formats of a range
  - delete, to delete the cells of a range
  - format, to retrieve the format of a range
*/
package workbookapp
