// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stylemap

// GlobalCSS is the stylesheet embedded once in every generated document.
// Slides are fixed-size positioned containers; shapes are placed inside
// them with absolute coordinates taken from the source.
const GlobalCSS = `        body {
            font-family: 'Segoe UI', Arial, sans-serif;
            color: #333;
            background-color: #f9f9f9;
            margin: 0;
            padding: 20px 0;
        }

        .slide {
            position: relative;
            width: 1280px;
            min-height: 720px;
            margin: 20px auto 160px;
            background: white;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            overflow: visible;
            page-break-after: always;
        }

        .slide-title {
            color: #2c3e50;
            margin: 0;
            padding: 10px 20px;
        }

        h1.slide-title { font-size: 28px; }
        h2.slide-title { font-size: 24px; }
        h3.slide-title { font-size: 20px; }
        h4.slide-title { font-size: 18px; }

        .shape {
            position: absolute;
            margin: 0;
            box-sizing: border-box;
        }

        .text-run {
            white-space: pre-wrap;
        }

        .shape ul, .shape ol {
            margin: 0;
            padding-left: 25px;
        }

        .shape li {
            margin-bottom: 4px;
        }

        .table-container {
            border-collapse: collapse;
        }

        .table-container th, .table-container td {
            border: 1px solid #ddd;
            text-align: left;
        }

        .table-container th {
            background-color: #f2f2f2;
            font-weight: bold;
        }

        .image-placeholder, .table-placeholder, .chart-placeholder, .shape-error {
            display: flex;
            align-items: center;
            justify-content: center;
            border: 1px dashed #bbb;
            color: #888;
            box-sizing: border-box;
        }

        .arrow-shape, .other-shape {
            position: static;
            box-sizing: border-box;
        }

        .slide-notes {
            position: absolute;
            top: 100%;
            left: 0;
            right: 0;
            background: #f8f9fa;
            padding: 15px;
            font-size: 14px;
            color: #666;
            border-top: 1px solid #eee;
        }
`
